package ui

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// NotificationSender delivers a desktop notification.
type NotificationSender interface {
	Send(title, message string) error
}

// commandSender runs a platform notification tool.
type commandSender func(title, message string) *exec.Cmd

func (c commandSender) Send(title, message string) error {
	return c(title, message).Run()
}

func appleScriptString(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}

func platformSender(goos string) NotificationSender {
	switch goos {
	case "linux":
		return commandSender(func(title, message string) *exec.Cmd {
			return exec.Command("notify-send", "--app-name=influencerfinder", title, message)
		})
	case "darwin":
		return commandSender(func(title, message string) *exec.Cmd {
			script := fmt.Sprintf("display notification %s with title %s", appleScriptString(message), appleScriptString(title))
			return exec.Command("osascript", "-e", script)
		})
	default:
		return nil
	}
}

// Notifier prints a message and, where the platform supports it, raises a
// desktop notification. Long live searches use it to report completion.
type Notifier struct {
	sender NotificationSender
}

// NewNotifier creates a Notifier for the current platform
func NewNotifier() *Notifier {
	return &Notifier{sender: platformSender(runtime.GOOS)}
}

// NewNotifierWithSender creates a Notifier that delivers through sender.
// A nil sender only prints.
func NewNotifierWithSender(sender NotificationSender) *Notifier {
	return &Notifier{sender: sender}
}

func (n *Notifier) send(title, message string) {
	if n.sender != nil {
		// Notifications are best effort
		_ = n.sender.Send(title, message)
	}
}

// SendNotification sends a desktop notification and prints to console
func (n *Notifier) SendNotification(title, message string) {
	fmt.Fprintf(Output, "\n%s: %s\n", Cyan(title), Yellow(message))
	n.send(title, message)
}

// SendError sends an error notification
func (n *Notifier) SendError(title, message string) {
	fmt.Fprintf(Output, "\n%s: %s\n", Red(title), Red(message))
	n.send(title, message)
}

// SendSuccess sends a success notification
func (n *Notifier) SendSuccess(title, message string) {
	fmt.Fprintf(Output, "\n%s: %s\n", Green(title), Green(message))
	n.send(title, message)
}
