package dto

import "content-variation-be/internal/entity"

type CreateSessionResponse struct {
	SessionId string `json:"session_id"`
}

type ExtractRequest struct {
	Images []string `json:"images" validate:"required,min=1,max=10,dive,required"`
}

type UpdateDecisionRequest struct {
	Decision entity.SlideDecision `json:"decision" validate:"required,oneof=KEEP VARY VARY_WITH_PAIN_POINT"`
}

type UpdatePainPointRequest struct {
	Selected string `json:"selected" validate:"required"`
	IsCustom bool   `json:"is_custom"`
}

type UpdateToneRequest struct {
	Mode        entity.ToneMode `json:"mode" validate:"required,oneof=matched custom"`
	CustomInput string          `json:"custom_input"`
}

type UpdateBrandRequest struct {
	Brand string `json:"brand"`
}

type UpdateVariationCountRequest struct {
	Count int `json:"count" validate:"required,min=1,max=20"`
}
