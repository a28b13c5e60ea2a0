package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amangusss/trainer-workload/internal/models"
)

func TestDocument_RoundTrip(t *testing.T) {
	w := &models.TrainerWorkload{
		Username:  "john.doe",
		FirstName: "John",
		LastName:  "Doe",
		Status:    models.StatusInactive,
		Years: []*models.YearSummary{
			{Year: 2026, Months: []*models.MonthSummary{{Month: models.March, TotalHours: 1.5}}},
			{Year: 2024, Months: []*models.MonthSummary{
				{Month: models.December, TotalHours: 2},
				{Month: models.January, TotalHours: 4.25},
			}},
		},
	}

	doc, err := fromModel(w)
	require.NoError(t, err)
	assert.Equal(t, "john.doe", doc.ID)
	assert.Equal(t, "INACTIVE", doc.Status)
	assert.Equal(t, "DECEMBER", doc.Years[1].Months[0].Month)

	got, err := doc.toModel()
	require.NoError(t, err)
	assert.Equal(t, w, got)
}

func TestDocument_EmptyYears(t *testing.T) {
	doc, err := fromModel(models.NewTrainerWorkload("u1"))
	require.NoError(t, err)
	assert.NotNil(t, doc.Years)

	got, err := doc.toModel()
	require.NoError(t, err)
	assert.NotNil(t, got.Years)
	assert.Empty(t, got.Years)
}

func TestDocument_UnknownCodes(t *testing.T) {
	_, err := workloadDocument{ID: "u1", Username: "u1", Status: "RETIRED"}.toModel()
	assert.ErrorIs(t, err, models.ErrUnsupportedCode)

	_, err = workloadDocument{
		ID: "u1", Username: "u1", Status: "active",
		Years: []yearDocument{{Year: 2025, Months: []monthDocument{{Month: "SMARCH"}}}},
	}.toModel()
	assert.ErrorIs(t, err, models.ErrUnsupportedCode)

	_, err = fromModel(&models.TrainerWorkload{Username: "u1", Status: models.TrainerStatus(42)})
	assert.ErrorIs(t, err, models.ErrUnsupportedCode)
}
