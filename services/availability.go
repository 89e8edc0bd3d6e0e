package services

import (
	"sort"
	"strings"
	"time"

	"stayhub/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// DateLayout is the wire format for all booking dates
const DateLayout = "2006-01-02"

// NormalizeCity lowercases and strips accents so that "São Paulo" matches "sao paulo"
func NormalizeCity(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Back-to-back stays (checkout day == checkin day)
// do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// FilterHotelsByCity keeps hotels whose city contains the normalized filter as
// a substring. An empty filter keeps everything.
func FilterHotelsByCity(hotels []models.Hotel, city string) []models.Hotel {
	if strings.TrimSpace(city) == "" {
		return hotels
	}

	needle := NormalizeCity(city)
	var filtered []models.Hotel
	for _, hotel := range hotels {
		if strings.Contains(NormalizeCity(hotel.City), needle) {
			filtered = append(filtered, hotel)
		}
	}
	return filtered
}

// ConflictingRoomIDs collects the distinct room IDs of bookings overlapping
// the requested window.
func ConflictingRoomIDs(bookings []models.Booking, checkIn, checkOut time.Time) map[uint]bool {
	conflicting := make(map[uint]bool)
	for _, booking := range bookings {
		if Overlaps(booking.CheckInDate, booking.CheckOutDate, checkIn, checkOut) {
			conflicting[booking.RoomID] = true
		}
	}
	return conflicting
}

// CollectAvailableRooms returns the rooms of the candidate hotels whose IDs are
// not in the conflicting set, deduplicated.
func CollectAvailableRooms(hotels []models.Hotel, conflicting map[uint]bool) []models.Room {
	seen := make(map[uint]bool)
	available := make([]models.Room, 0)
	for _, hotel := range hotels {
		for _, room := range hotel.Rooms {
			if conflicting[room.ID] || seen[room.ID] {
				continue
			}
			seen[room.ID] = true
			available = append(available, room)
		}
	}
	return available
}

// SearchAvailableRooms finds rooms without an overlapping booking in
// [checkIn, checkOut), among hotels matching the optional city filter.
func SearchAvailableRooms(db *gorm.DB, checkIn, checkOut time.Time, city string) ([]models.Room, error) {
	var hotels []models.Hotel
	if err := db.Preload("Rooms").Find(&hotels).Error; err != nil {
		return nil, err
	}
	hotels = FilterHotelsByCity(hotels, city)

	var overlapping []models.Booking
	if err := db.Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn).
		Find(&overlapping).Error; err != nil {
		return nil, err
	}

	conflicting := ConflictingRoomIDs(overlapping, checkIn, checkOut)
	return CollectAvailableRooms(hotels, conflicting), nil
}

type CitySuggestion struct {
	City  string  `json:"city"`
	Score float64 `json:"score"`
}

// createMatcher builds a closestmatch index over the known city names
func createMatcher(cities []string) *closestmatch.ClosestMatch {
	return closestmatch.New(cities, []int{2, 3})
}

// calculateSimilarity scores two strings on [0,1] via Levenshtein distance
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// SuggestCities ranks the known cities against a free-form query. Used by the
// search page when a city filter matches nothing.
func SuggestCities(cities []string, query string, limit int) []CitySuggestion {
	normalizedQuery := NormalizeCity(query)
	if normalizedQuery == "" || len(cities) == 0 {
		return nil
	}

	unique := make(map[string]string)
	for _, city := range cities {
		if city != "" {
			unique[NormalizeCity(city)] = city
		}
	}

	normalized := make([]string, 0, len(unique))
	for norm := range unique {
		normalized = append(normalized, norm)
	}

	cm := createMatcher(normalized)
	closest := cm.ClosestN(normalizedQuery, limit)

	suggestions := make([]CitySuggestion, 0, len(closest))
	for _, match := range closest {
		if match == "" {
			continue
		}
		suggestions = append(suggestions, CitySuggestion{
			City:  unique[match],
			Score: calculateSimilarity(normalizedQuery, match),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
