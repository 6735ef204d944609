package models

// SymptomRequest is the payload for /api/ai/symptoms.
type SymptomRequest struct {
	Symptoms    string `json:"symptoms" binding:"required"`
	Description string `json:"description"`
}

// SymptomAnalysis mirrors the JSON object the model is asked to produce.
type SymptomAnalysis struct {
	ProbableConditions []string `json:"probable_medical_conditions"`
	Urgency            string   `json:"urgency"`
	Action             []string `json:"action"`
	WhatToAvoid        []string `json:"what_to_avoid"`
	CommonSymptoms     []string `json:"common_symptoms"`
	Precautions        []string `json:"precautions"`
	RelevantResources  []string `json:"relevant_resources"`
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// ChatTurn is one exchange kept in the conversation context.
type ChatTurn struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// AIContext is the per-user conversation state cached between chat calls.
type AIContext struct {
	Turns []ChatTurn `json:"turns"`
}

type PrescriptionImageRequest struct {
	ImageURL string `json:"imageUrl" binding:"required"`
}
