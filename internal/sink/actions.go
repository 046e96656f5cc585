package sink

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/atotto/clipboard"
)

// Defaults returns the registry of built-in sinks. Registration failures
// here are programmer errors, the set is fixed.
func Defaults() *Registry {
	r := NewRegistry()
	builtins := []*Sink{
		{Name: "Day One", JournalLike: true, Send: sendToDayOne},
		{Name: "OmniFocus", Send: sendToOmniFocus},
		{Name: "Reminders", Send: sendToReminders},
		{Name: "Clipboard", Send: sendToClipboard},
	}
	for _, s := range builtins {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
	return r
}

// sendToDayOne creates a Day One journal entry from the text.
func sendToDayOne(text string, dryRun bool) error {
	slog.Info("sending to Day One", "text", text)
	return openURL("dayone2://post?entry="+escape(text), dryRun)
}

// sendToOmniFocus creates an OmniFocus action from the text.
func sendToOmniFocus(text string, dryRun bool) error {
	slog.Info("sending to OmniFocus", "text", text)
	return openURL("omnifocus://x-callback-url/add?name="+escape(text)+"&autosave=true", dryRun)
}

// sendToReminders creates a Reminders item via the "reminders" tool from
// https://github.com/keith/reminders-cli.
func sendToReminders(text string, dryRun bool) error {
	slog.Info("sending to Reminders", "text", text)
	if dryRun {
		return nil
	}
	return runCommand("reminders", "add", "Inbox", text)
}

// sendToClipboard copies the text onto the system clipboard.
func sendToClipboard(text string, dryRun bool) error {
	slog.Info("copying to clipboard", "text", text)
	if dryRun {
		return nil
	}
	return clipboard.WriteAll(text)
}

// escape percent-encodes text for a URL-scheme query value, with spaces as
// %20 rather than + since scheme handlers take the value literally.
func escape(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
