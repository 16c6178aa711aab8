package views

import "math/rand"

var quotes = []string{
	"The secret of getting ahead is getting started. - Mark Twain",
	"Don't watch the clock; do what it does. Keep going. - Sam Levenson",
	"The future depends on what you do today. - Mahatma Gandhi",
	"It's not about having time, it's about making time. - Unknown",
	"Success is the sum of small efforts, repeated day in and day out. - Robert Collier",
	"The only way to do great work is to love what you do. - Steve Jobs",
	"Your time is limited, don't waste it living someone else's life. - Steve Jobs",
	"The harder you work for something, the greater you'll feel when you achieve it. - Unknown",
	"Dream big and dare to fail. - Norman Vaughan",
	"Education is the most powerful weapon which you can use to change the world. - Nelson Mandela",
}

// RandomQuote picks one of the dashboard's motivational quotes.
func RandomQuote(r *rand.Rand) string {
	return quotes[r.Intn(len(quotes))]
}
