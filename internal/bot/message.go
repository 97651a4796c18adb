package bot

// Message is what any transport hands the dispatcher: the text, who sent it,
// and where. Nothing more is required of a front-end.
type Message struct {
	Body   string
	SentBy string
	SentIn string
}
