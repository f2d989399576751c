// Package chat renders service outputs into chat messages: a title, body
// text, labeled fields, and action buttons that feed tokens back into
// routing.
package chat

import "strings"

// Message is one rendered chat reply
type Message struct {
	Title       string
	Description string
	Fields      []Field
	Buttons     []Button
}

// Field is a named block of text within a message
type Field struct {
	Name  string
	Value string
}

// Button is a clickable action. Token is fed back into routing verbatim
// when the button is pressed.
type Button struct {
	Label string
	Token string
}

// Humanize turns an action token into a button label: underscores become
// spaces and each word is capitalized, e.g. "watch_bar_fight" becomes
// "Watch Bar Fight".
func Humanize(token string) string {
	words := strings.Split(token, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
