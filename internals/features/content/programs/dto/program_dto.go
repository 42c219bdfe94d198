package dto

import "globalhearts_backend/internals/features/content/programs/model"

type ProgramDTO struct {
	ProgramID          string   `json:"program_id"`
	ProgramSlug        string   `json:"program_slug"`
	ProgramTitle       string   `json:"program_title"`
	ProgramDescription string   `json:"program_description"`
	ProgramImage       string   `json:"program_image"`
	ProgramColor       string   `json:"program_color"`
	ProgramTags        []string `json:"program_tags"`
}

func ToProgramDTO(p model.ProgramModel) ProgramDTO {
	tags := []string(p.ProgramTags)
	if tags == nil {
		tags = []string{}
	}
	return ProgramDTO{
		ProgramID:          p.ProgramID.String(),
		ProgramSlug:        p.ProgramSlug,
		ProgramTitle:       p.ProgramTitle,
		ProgramDescription: p.ProgramDescription,
		ProgramImage:       p.ProgramImage,
		ProgramColor:       p.ProgramColor,
		ProgramTags:        tags,
	}
}
