package ui

import (
	"github.com/Davidcrz14/Temporizador/internal/models"
	"github.com/Davidcrz14/Temporizador/internal/timer"
)

// AppState 应用唯一的可变状态，由 Controller 独占
type AppState struct {
	Engine *timer.Engine
	Inputs models.InputFields
}

func NewAppState() *AppState {
	return &AppState{Engine: timer.NewEngine()}
}

// Reset 重置计时器并清空输入
func (s *AppState) Reset() {
	s.Engine.Reset()
	s.Inputs = models.InputFields{}
}
