package main

import (
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// ModelManager loads, caches and unloads the arena models. An .obj under
// assets/models wins; otherwise a coloured cube mesh stands in.
type ModelManager struct {
	models map[string]rl.Model
	log    zerolog.Logger
}

func NewModelManager(log zerolog.Logger) *ModelManager {
	return &ModelManager{
		models: make(map[string]rl.Model),
		log:    log,
	}
}

// load builds one model. Raylib panics on corrupt files; such models are
// skipped and the cube fallback is used.
func (m *ModelManager) load(id string, size rl.Vector3, tint rl.Color) {
	if _, ok := m.models[id]; ok {
		return
	}

	modelPath := filepath.Join("assets", "models", id+".obj")
	if _, err := os.Stat(modelPath); err == nil {
		func() {
			defer func() {
				if r := recover(); r != nil {
					m.log.Error().Str("model", id).Interface("panic", r).Msg("raylib panicked loading model, skipping")
				}
			}()
			model := rl.LoadModel(modelPath)
			if model.MeshCount == 0 {
				m.log.Warn().Str("model", id).Str("path", modelPath).Msg("model is empty")
				return
			}
			m.models[id] = model
		}()
		if _, ok := m.models[id]; ok {
			m.log.Debug().Str("model", id).Msg("loaded model from file")
			return
		}
	}

	model := rl.LoadModelFromMesh(rl.GenMeshCube(size.X, size.Y, size.Z))
	model.Materials.Maps.Color = tint
	m.models[id] = model
}

// LoadArenaModels prepares every model the viewer draws.
func (m *ModelManager) LoadArenaModels() {
	for id, p := range modelParts {
		m.load(id, p.size, p.tint)
	}
	m.log.Info().Int("models", len(m.models)).Msg("arena models ready")
}

// Cleanup unloads everything.
func (m *ModelManager) Cleanup() {
	for id, model := range m.models {
		rl.UnloadModel(model)
		delete(m.models, id)
	}
	m.log.Debug().Msg("all models unloaded")
}

// Model returns the model for id.
func (m *ModelManager) Model(id string) (rl.Model, bool) {
	model, ok := m.models[id]
	return model, ok
}
