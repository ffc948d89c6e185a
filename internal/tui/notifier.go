package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

type toastMsg struct {
	Text  string
	Error bool
}

type toastExpiredMsg struct {
	id int
}

// ToastNotifier delivers submission outcomes to the running program as
// transient toasts. Calls made before Attach are only logged.
type ToastNotifier struct {
	mu   sync.Mutex
	send func(tea.Msg)
	log  *logrus.Entry
}

func NewToastNotifier(log *logrus.Entry) *ToastNotifier {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &ToastNotifier{log: log}
}

func (n *ToastNotifier) Attach(p *tea.Program) {
	n.attach(p.Send)
}

func (n *ToastNotifier) attach(send func(tea.Msg)) {
	n.mu.Lock()
	n.send = send
	n.mu.Unlock()
}

func (n *ToastNotifier) Success(msg string) {
	n.emit(toastMsg{Text: msg})
}

func (n *ToastNotifier) Error(msg string) {
	n.emit(toastMsg{Text: msg, Error: true})
}

func (n *ToastNotifier) emit(t toastMsg) {
	n.mu.Lock()
	send := n.send
	n.mu.Unlock()
	if send == nil {
		n.log.WithField("error", t.Error).Info(t.Text)
		return
	}
	send(t)
}
