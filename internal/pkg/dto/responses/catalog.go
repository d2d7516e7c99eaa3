package responses

import (
	"tmdscreen-service/internal/app/services/core/engine"
)

type QuestionCatalog struct {
	Total     int               `json:"total"`
	Questions []engine.Question `json:"questions"`
}

type CodeCatalog struct {
	Total int                     `json:"total"`
	Codes []engine.DiagnosticCode `json:"codes"`
}
