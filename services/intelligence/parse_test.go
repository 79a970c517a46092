package ai

import (
	"testing"

	"tripcraft/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractItineraryToleratesSurroundingText(t *testing.T) {
	text := "Sure! Here is your plan:\n```json\n[{\"day\":1,\"activities\":[{\"name\":\"Fushimi Inari\",\"time\":\"08:00 AM\",\"cost\":\"$0\",\"description\":\"Gates\"}]}]\n```\nEnjoy [your trip]"

	_, err := ExtractItinerary(text)
	// the last ']' belongs to the trailing prose, so the span is not valid JSON
	assert.ErrorIs(t, err, ErrMalformedItinerary)

	days, err := ExtractItinerary("Sure! ```json\n[{\"day\":1,\"activities\":[{\"name\":\"Fushimi Inari\",\"cost\":\"$12.50\"}]}]\n```")
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, models.Cost(12.5), days[0].Activities[0].Cost)
}

func TestExtractItineraryWithoutArray(t *testing.T) {
	_, err := ExtractItinerary("I cannot help with that.")
	assert.ErrorIs(t, err, ErrNoItinerary)

	_, err = ExtractItinerary("] backwards [")
	assert.ErrorIs(t, err, ErrNoItinerary)
}

func TestNormalizeItinerary(t *testing.T) {
	raw := []models.ItineraryDay{
		{Day: 3, Activities: []models.ItineraryActivity{{Name: "Late", Cost: 5}}},
		{Day: 1, Activities: []models.ItineraryActivity{
			{Name: "  Temple  ", Time: " 09:00 ", Cost: -4},
			{Name: "   "},
		}},
		{Day: 2, Activities: nil},
	}

	days := NormalizeItinerary(raw, 2)
	require.Len(t, days, 2)

	assert.Equal(t, 1, days[0].Day)
	require.Len(t, days[0].Activities, 1)
	assert.Equal(t, "Temple", days[0].Activities[0].Name)
	assert.Equal(t, "09:00", days[0].Activities[0].Time)
	assert.Equal(t, models.Cost(0), days[0].Activities[0].Cost)

	assert.Equal(t, 2, days[1].Day)
	assert.NotNil(t, days[1].Activities)
	assert.Empty(t, days[1].Activities)

	// input is not mutated
	assert.Equal(t, 3, raw[0].Day)
}

func TestNegativeCostStringsAreZeroed(t *testing.T) {
	raw, err := ExtractItinerary(`[{"day":1,"activities":[{"name":"Refund desk","cost":"-25"},{"name":"Museum","cost":"$8"}]}]`)
	require.NoError(t, err)
	require.Equal(t, models.Cost(-25), raw[0].Activities[0].Cost)

	days := NormalizeItinerary(raw, 1)
	assert.Equal(t, models.Cost(0), days[0].Activities[0].Cost)
	assert.Equal(t, models.Cost(8), days[0].Activities[1].Cost)
}

func TestNormalizeItineraryRenumbersGaps(t *testing.T) {
	days := NormalizeItinerary([]models.ItineraryDay{{Day: 5}, {Day: 9}}, 0)
	require.Len(t, days, 2)
	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, 2, days[1].Day)
}

func TestBuildItineraryPromptDefaultsPreferences(t *testing.T) {
	p := BuildItineraryPrompt(" Lisbon ", 4, "  ")
	assert.Contains(t, p, "4-day itinerary for a trip to Lisbon.")
	assert.Contains(t, p, "preferences: None.")
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, CacheKey("Kyoto", 3, "food"), CacheKey("  kyoto ", 3, "food "))
	assert.NotEqual(t, CacheKey("Kyoto", 3, "food"), CacheKey("Kyoto", 4, "food"))
	assert.Len(t, CacheKey("Kyoto", 3, ""), 64)
}
