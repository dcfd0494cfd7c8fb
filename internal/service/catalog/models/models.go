package models

import (
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
)

// Response моделі

// HallResponse зал зі списку/картки каталогу
type HallResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	RoomNumber string  `json:"roomNumber"`
	EventType  string  `json:"eventType"`
	Capacity   int     `json:"capacity"`
	Price      float64 `json:"price"`
	IsActive   bool    `json:"isActive"`
}

// SectionResponse секція зі списку/картки каталогу
type SectionResponse struct {
	ID               int64   `json:"id"`
	HallID           int64   `json:"hallId"`
	HallName         string  `json:"hallName"`
	TrainerID        *int64  `json:"trainerId,omitempty"`
	TrainerName      *string `json:"trainerName,omitempty"`
	SportType        string  `json:"sportType"`
	PreparationLevel string  `json:"preparationLevel"`
	MinAge           *int    `json:"minAge,omitempty"`
	MaxAge           *int    `json:"maxAge,omitempty"`
	Price            float64 `json:"price"`
	FreeSeats        int     `json:"freeSeats"`
}

// TrainerResponse тренер зі списку
type TrainerResponse struct {
	ID              int64  `json:"id"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Specialization  string `json:"specialization"`
	ExperienceYears int    `json:"experienceYears"`
	Phone           string `json:"phone"`
}

// HallListResponse список залів
type HallListResponse struct {
	Halls []HallResponse `json:"halls"`
}

// SectionListResponse список секцій
type SectionListResponse struct {
	Sections []SectionResponse `json:"sections"`
}

// TrainerListResponse список тренерів
type TrainerListResponse struct {
	Trainers []TrainerResponse `json:"trainers"`
}

// ToDomainHall конвертує wire-модель залу в domain
func ToDomainHall(h *sportapi.Hall) *domain.Hall {
	return &domain.Hall{
		ID:         h.ID,
		Name:       h.Name,
		RoomNumber: h.RoomNumber,
		EventType:  h.EventType,
		Capacity:   h.Capacity,
		Price:      h.Price,
		IsActive:   h.IsActive,
	}
}

// FromDomainHall будує відповідь із domain-моделі залу
func FromDomainHall(h *domain.Hall) HallResponse {
	return HallResponse{
		ID:         h.ID,
		Name:       h.Name,
		RoomNumber: h.RoomNumber,
		EventType:  h.EventType,
		Capacity:   h.Capacity,
		Price:      h.Price,
		IsActive:   h.IsActive,
	}
}

// FromWireHall конвертує зал основного API у відповідь шлюзу
func FromWireHall(h *sportapi.Hall) HallResponse {
	return FromDomainHall(ToDomainHall(h))
}

// FromWireHallList конвертує список залів
func FromWireHallList(halls []sportapi.Hall) *HallListResponse {
	resp := &HallListResponse{Halls: make([]HallResponse, 0, len(halls))}
	for i := range halls {
		resp.Halls = append(resp.Halls, FromWireHall(&halls[i]))
	}
	return resp
}

// ToDomainSection конвертує wire-модель секції в domain
func ToDomainSection(s *sportapi.Section) *domain.Section {
	return &domain.Section{
		ID:               s.ID,
		HallID:           s.Hall,
		HallName:         s.HallName,
		TrainerID:        s.Trainer,
		TrainerName:      s.TrainerName,
		SportType:        s.SportType,
		PreparationLevel: s.PreparationLevel,
		MinAge:           s.MinAge,
		MaxAge:           s.MaxAge,
		Price:            s.Price,
		FreeSeats:        s.FreeSeats,
	}
}

// FromDomainSection будує відповідь із domain-моделі секції
func FromDomainSection(s *domain.Section) SectionResponse {
	return SectionResponse{
		ID:               s.ID,
		HallID:           s.HallID,
		HallName:         s.HallName,
		TrainerID:        s.TrainerID,
		TrainerName:      s.TrainerName,
		SportType:        s.SportType,
		PreparationLevel: s.PreparationLevel,
		MinAge:           s.MinAge,
		MaxAge:           s.MaxAge,
		Price:            s.Price,
		FreeSeats:        s.FreeSeats,
	}
}

// FromWireSection конвертує секцію основного API у відповідь шлюзу
func FromWireSection(s *sportapi.Section) SectionResponse {
	return FromDomainSection(ToDomainSection(s))
}

// FromWireSectionList конвертує список секцій
func FromWireSectionList(sections []sportapi.Section) *SectionListResponse {
	resp := &SectionListResponse{Sections: make([]SectionResponse, 0, len(sections))}
	for i := range sections {
		resp.Sections = append(resp.Sections, FromWireSection(&sections[i]))
	}
	return resp
}

// ToDomainTrainer конвертує wire-модель тренера в domain
func ToDomainTrainer(t *sportapi.Trainer) *domain.Trainer {
	return &domain.Trainer{
		ID:              t.ID,
		FirstName:       t.FirstName,
		LastName:        t.LastName,
		Specialization:  t.Specialization,
		ExperienceYears: t.ExperienceYears,
		Phone:           t.Phone,
	}
}

// FromDomainTrainer будує відповідь із domain-моделі тренера
func FromDomainTrainer(t *domain.Trainer) TrainerResponse {
	return TrainerResponse{
		ID:              t.ID,
		FirstName:       t.FirstName,
		LastName:        t.LastName,
		Specialization:  t.Specialization,
		ExperienceYears: t.ExperienceYears,
		Phone:           t.Phone,
	}
}

// FromWireTrainerList конвертує список тренерів
func FromWireTrainerList(trainers []sportapi.Trainer) *TrainerListResponse {
	resp := &TrainerListResponse{Trainers: make([]TrainerResponse, 0, len(trainers))}
	for i := range trainers {
		resp.Trainers = append(resp.Trainers, FromDomainTrainer(ToDomainTrainer(&trainers[i])))
	}
	return resp
}
