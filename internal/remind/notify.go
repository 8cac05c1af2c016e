package remind

import "github.com/gen2brain/beeep"

// DesktopNotifier delivers reminders through the OS notification
// subsystem.
type DesktopNotifier struct{}

// Notify shows a desktop notification.
func (DesktopNotifier) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}
