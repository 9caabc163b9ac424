package eventparse

// Word tables loaded once at process start. All entries are lowercase.

// commandVerbs are scheduling command words stripped from titles.
var commandVerbs = map[string]struct{}{
	"set": {}, "create": {}, "schedule": {}, "add": {}, "make": {},
	"plan": {}, "book": {}, "put": {}, "establish": {}, "arrange": {},
	"organize": {}, "setup": {},
}

// temporalWords are date/time vocabulary stripped from titles.
var temporalWords = map[string]struct{}{
	"tomorrow": {}, "tmr": {}, "today": {}, "tdy": {}, "yesterday": {},
	"yest": {}, "now": {}, "tonight": {},
	"monday": {}, "mon": {}, "tuesday": {}, "tue": {}, "wednesday": {},
	"wed": {}, "thursday": {}, "thu": {}, "friday": {}, "fri": {},
	"saturday": {}, "sat": {}, "sunday": {}, "sun": {},
	"january": {}, "jan": {}, "february": {}, "feb": {}, "march": {},
	"mar": {}, "april": {}, "apr": {}, "may": {}, "june": {}, "jun": {},
	"july": {}, "jul": {}, "august": {}, "aug": {}, "september": {},
	"sep": {}, "october": {}, "oct": {}, "november": {}, "nov": {},
	"december": {}, "dec": {},
	"am": {}, "pm": {}, "noon": {}, "midnight": {}, "at": {}, "@": {},
	"in": {}, "on": {}, "next": {}, "this": {}, "last": {},
	"remind": {}, "me": {}, "to": {}, "night": {},
}

// timeUnits are duration unit words.
var timeUnits = map[string]struct{}{
	"hour": {}, "hours": {}, "minute": {}, "minutes": {}, "day": {},
	"days": {}, "week": {}, "weeks": {}, "month": {}, "months": {},
	"year": {}, "years": {},
}

// numberWords are spelled-out numerals.
// TODO: "zeroone" looks like a fused entry that never matches; confirm
// against recorded inputs before splitting it.
var numberWords = map[string]struct{}{
	"zeroone": {}, "two": {}, "three": {}, "four": {}, "five": {},
	"six": {}, "seven": {}, "eight": {}, "nine": {}, "ten": {},
	"eleven": {}, "twelve": {}, "twenty": {}, "thirty": {}, "forty": {},
	"fifty": {},
}

// genericNouns are placeholder nouns that make a preceding article
// droppable.
var genericNouns = map[string]struct{}{
	"event": {}, "meeting": {}, "appointment": {}, "reminder": {},
	"call": {}, "task": {},
}

// articles are the English articles.
var articles = map[string]struct{}{
	"a": {}, "an": {}, "the": {},
}
