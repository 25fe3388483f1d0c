// Package genre tags movie broadcasts with a canonical genre derived from
// the guide's category text and the programme title.
package genre

import (
	"strings"
)

// Genre is a canonical movie genre label.
type Genre string

const (
	Comedy      Genre = "Komedia"
	Drama       Genre = "Dramat"
	Action      Genre = "Sensacyjny"
	Horror      Genre = "Horror"
	SciFi       Genre = "Sci-Fi"
	Documentary Genre = "Dokument"
	Family      Genre = "Familijny"
	Film        Genre = "Film"
)

// All returns the genres in canonical order. Film is the fallback and
// comes last.
func All() []Genre {
	return []Genre{Comedy, Drama, Action, Horror, SciFi, Documentary, Family, Film}
}

var genreKeywords = map[Genre][]string{
	Comedy: {
		"komedia", "komediowy", "comedy", "romantyczn",
	},
	Drama: {
		"dramat", "drama", "obyczajow", "melodramat", "biograficzn", "psychologiczn",
	},
	Action: {
		"sensacyjny", "sensacji", "akcji", "action", "thriller", "kryminaln",
		"wojenn", "western", "przygodow",
	},
	Horror: {
		"horror", "groz",
	},
	SciFi: {
		"sci-fi", "science fiction", "fantastyczn", "fantasy", "s-f",
	},
	Documentary: {
		"dokumentaln", "dokument", "documentary",
	},
	Family: {
		"familijn", "animowan", "animacja", "dla dzieci", "bajka", "przyrodnicz",
	},
}

// Classify determines the genre from the programme's category text and
// title. Category keywords are weighted 2x over title keywords. Returns
// Film when nothing matches.
func Classify(category, titleText string) Genre {
	catLower := strings.ToLower(category)
	titleLower := strings.ToLower(titleText)

	var best Genre = Film
	bestScore := 0

	for _, g := range All() {
		score := 0
		for _, kw := range genreKeywords[g] {
			if strings.Contains(catLower, kw) {
				score += 2
			}
			if strings.Contains(titleLower, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = g
		}
	}

	return best
}
