package mute

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a field key to its inline error message.
type FieldErrors map[string]string

// durationRule is the validate tag of Draft.Duration.
const durationRule = "required,number,max=9"

var (
	steam64Pattern    = regexp.MustCompile(`^7656119\d{10}$`)
	steam2Pattern     = regexp.MustCompile(`^STEAM_[0-5]:[01]:\d{1,10}$`)
	steam3Pattern     = regexp.MustCompile(`^\[U:1:\d{1,10}\]$`)
	profileURLPattern = regexp.MustCompile(`^(?:https?://)?(?:www\.)?steamcommunity\.com/(?:profiles/7656119\d{10}|id/[A-Za-z0-9_-]{2,32})/?$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "steamid", func(fl validator.FieldLevel) bool {
		return IsPlayerIdentifier(fl.Field().String())
	})
	mustRegister(v, "trimmin", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		return err == nil && trimmedLen(fl.Field().String()) >= n
	})
	mustRegister(v, "trimmax", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		return err == nil && trimmedLen(fl.Field().String()) <= n
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

func trimmedLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

// IsPlayerIdentifier reports whether s is a Steam64 ID, a SteamID, a
// SteamID3 or a Steam community profile URL.
func IsPlayerIdentifier(s string) bool {
	s = strings.TrimSpace(s)
	return steam64Pattern.MatchString(s) ||
		steam2Pattern.MatchString(s) ||
		steam3Pattern.MatchString(s) ||
		profileURLPattern.MatchString(s)
}

// ParseMinutes parses a duration field. The value must be a non-negative
// whole number of minutes.
func ParseMinutes(s string) (int, error) {
	if err := validate.Var(s, durationRule); err != nil {
		return 0, fmt.Errorf("duration %q is not a whole number of minutes", s)
	}
	return strconv.Atoi(s)
}

// Validate checks the whole draft and returns one message per failing
// field, or nil when the draft may be submitted.
func Validate(d Draft) FieldErrors {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Only reachable if validator rejects the Draft type itself.
		return FieldErrors{FieldPlayerSteamID: err.Error()}
	}
	errs := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, seen := errs[fe.Field()]; !seen {
			errs[fe.Field()] = fieldMessage(fe)
		}
	}
	return errs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case FieldPlayerSteamID:
		if fe.Tag() == "required" {
			return "Player is required"
		}
		return "Enter a Steam64 ID, SteamID or Steam profile URL"
	case FieldReason:
		if fe.Tag() == "trimmax" {
			return fmt.Sprintf("Reason must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("Reason must be at least %s characters", fe.Param())
	case FieldDuration:
		if fe.Tag() == "required" {
			return "Duration is required"
		}
		return "Duration must be a whole number of minutes (0 for permanent)"
	case FieldComment:
		return fmt.Sprintf("Comment must be at most %s characters", fe.Param())
	case FieldType:
		return "Select a valid mute type"
	}
	return fe.Error()
}
