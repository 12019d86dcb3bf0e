package domain

type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

type DailyContent struct {
	Quote Quote  `json:"quote"`
	Fact  string `json:"fact"`
	Tip   string `json:"tip"`
}

var quotes = []Quote{
	{Text: "Every time you spend money, you're casting a vote for the kind of world you want.", Author: "Anna Lappé"},
	{Text: "We do not inherit the earth from our ancestors, we borrow it from our children.", Author: "Native American proverb"},
	{Text: "The greatest threat to our planet is the belief that someone else will save it.", Author: "Robert Swan"},
	{Text: "Nature doesn't need people. People need nature.", Author: "Harrison Ford"},
}

var facts = []string{
	"Recycling one aluminium can saves enough energy to run a TV for three hours.",
	"Producing 1 kg of beef takes about 15,000 litres of water.",
	"A plastic bag takes 100 to 400 years to break down; a reusable bag pays for itself after four uses.",
	"Switching off the light when you leave a room saves up to 10% of a household's electricity a year.",
}

var tips = []string{
	"Clean with vinegar and baking soda instead of household chemicals.",
	"Store food in glass jars rather than plastic bags.",
	"Bring your own cup to the coffee shop and skip up to 500 disposable cups a year.",
	"Unplug appliances at night: on standby they draw up to 10% of their power.",
}

func Quotes() []Quote {
	return append([]Quote(nil), quotes...)
}

func Facts() []string {
	return append([]string(nil), facts...)
}

func Tips() []string {
	return append([]string(nil), tips...)
}
