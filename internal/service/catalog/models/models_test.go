package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
	"github.com/SolomiaSydoryk/sportcenter-gateway/pkg/ptr"
)

func TestFromWireSection(t *testing.T) {
	wire := &sportapi.Section{
		ID:               3,
		Hall:             7,
		HallName:         "Великий зал",
		Trainer:          ptr.Ptr(int64(2)),
		TrainerName:      ptr.Ptr("Олена Петрівна"),
		SportType:        "yoga",
		PreparationLevel: "beginner",
		MinAge:           ptr.Ptr(18),
		Price:            350,
		FreeSeats:        12,
	}

	d := ToDomainSection(wire)
	assert.Equal(t, int64(7), d.HallID)
	require.NotNil(t, d.TrainerID)
	assert.Equal(t, int64(2), *d.TrainerID)

	resp := FromWireSection(wire)
	assert.Equal(t, int64(7), resp.HallID)
	assert.Equal(t, "Великий зал", resp.HallName)
	assert.Equal(t, "yoga", resp.SportType)
	require.NotNil(t, resp.MinAge)
	assert.Equal(t, 18, *resp.MinAge)
	assert.Nil(t, resp.MaxAge)
	assert.Equal(t, 12, resp.FreeSeats)
}

func TestFromWireHallList(t *testing.T) {
	halls := []sportapi.Hall{
		{ID: 1, Name: "Басейн", EventType: "Pool", Capacity: 30, Price: 500, IsActive: true},
		{ID: 2, Name: "Фітнес", EventType: "Fitness", Capacity: 20, Price: 300},
	}

	resp := FromWireHallList(halls)
	require.Len(t, resp.Halls, 2)
	assert.Equal(t, "Басейн", resp.Halls[0].Name)
	assert.True(t, resp.Halls[0].IsActive)
	assert.False(t, resp.Halls[1].IsActive)
}

func TestFromWireTrainerList(t *testing.T) {
	trainers := []sportapi.Trainer{
		{ID: 5, FirstName: "Ігор", LastName: "Коваль", Specialization: "swimming", ExperienceYears: 8},
	}

	resp := FromWireTrainerList(trainers)
	require.Len(t, resp.Trainers, 1)
	assert.Equal(t, "Коваль", resp.Trainers[0].LastName)
	assert.Equal(t, 8, resp.Trainers[0].ExperienceYears)
}
