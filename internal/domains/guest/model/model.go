package model

import (
	"reception/shared"
	"reception/shared/currency"
	gDto "reception/shared/dto"
	"sort"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

const (
	EntityName = "guest"

	CacheKeyHistory = "history"

	ActionGuestHistory = "guest_history"
)

const (
	scorePhone      = 100
	scoreRoom       = 90
	scoreName       = 80
	scoreFuzzy      = 70
	minPhoneDigits  = 3
	minSimilarity   = 0.6
	suggestionBag   = 2
	suggestionLimit = 0.5

	phoneChars = "0123456789 +-()"
)

type Guest struct {
	ID          gDto.FlexInt    `json:"id"`
	BookingID   gDto.FlexInt    `json:"booking_id"`
	Name        string          `json:"guest_name"`
	Phone       string          `json:"guest_phone"`
	Email       string          `json:"guest_email"`
	RoomNumber  gDto.FlexString `json:"room_number"`
	CheckIn     string          `json:"check_in"`
	CheckOut    string          `json:"check_out"`
	Status      string          `json:"status"`
	TotalAmount currency.Amount `json:"total_amount"`
	PaidAmount  currency.Amount `json:"paid_amount"`
}

type Scored struct {
	Guest
	Score int
}

// Normalize lowercases and transliterates to ASCII so "Zoë" matches "zoe".
func Normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(input)))
}

// Similarity is 1 minus the edit distance over the longer length.
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)

	longest := max(len(ra), len(rb))
	if longest == 0 {
		return 1
	}

	distance := levenshtein.DistanceForStrings(ra, rb, levenshtein.DefaultOptions)

	return 1 - float64(distance)/float64(longest)
}

// Score ranks one guest against an already normalized query. Zero means no match.
func Score(query string, guest Guest) int {
	if query == "" {
		return 0
	}

	if digits := shared.DigitsOnly(query); len(digits) >= minPhoneDigits && strings.Trim(query, phoneChars) == "" {
		if strings.Contains(shared.DigitsOnly(guest.Phone), digits) {
			return scorePhone
		}
	}

	if strings.EqualFold(guest.RoomNumber.String(), query) {
		return scoreRoom
	}

	name := Normalize(guest.Name)
	if strings.Contains(name, query) {
		return scoreName
	}

	best := 0.0
	for _, token := range strings.Fields(name) {
		best = max(best, Similarity(query, token))
	}

	best = max(best, Similarity(query, name))
	if best < minSimilarity {
		return 0
	}

	return int(best * scoreFuzzy)
}

// Rank returns matching guests, best first. Ties keep upstream order.
func Rank(query string, guests []Guest) []Scored {
	query = Normalize(query)
	ranked := []Scored{}

	for _, guest := range guests {
		if score := Score(query, guest); score > 0 {
			ranked = append(ranked, Scored{Guest: guest, Score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// Suggest proposes the closest known name token for a query that matched nothing.
func Suggest(query string, guests []Guest) string {
	query = Normalize(query)
	if query == "" {
		return ""
	}

	seen := map[string]struct{}{}
	tokens := []string{}

	for _, guest := range guests {
		for _, token := range strings.Fields(Normalize(guest.Name)) {
			if _, ok := seen[token]; ok {
				continue
			}

			seen[token] = struct{}{}
			tokens = append(tokens, token)
		}
	}

	if len(tokens) == 0 {
		return ""
	}

	suggestion := closestmatch.New(tokens, []int{suggestionBag}).Closest(query)
	if suggestion == "" || suggestion == query || Similarity(query, suggestion) < suggestionLimit {
		return ""
	}

	return suggestion
}
