package request_models

type SetThemeRequest struct {
	Theme string `json:"theme" binding:"required,oneof=light dark"`
}

type SetLanguageRequest struct {
	Language string `json:"language" binding:"required,min=2,max=8"`
}

type SetCurrencyRequest struct {
	Currency string `json:"currency" binding:"required,len=3"`
}

type SetActiveTabRequest struct {
	Tab string `json:"tab" binding:"required"`
}
