package roster

import "github.com/rs/zerolog"

func loadKindIntoArrayLogger(kind Component, arrayLogger *zerolog.Array) *zerolog.Array {
	dictLogger := zerolog.Dict()
	dictLogger = dictLogger.Uint32("kind_id", kind.ID())
	dictLogger = dictLogger.Str("kind_name", kind.Name())
	return arrayLogger.Dict(dictLogger)
}

func logRegistryConfigured(kinds []Component, capacity int) {
	event := Config.logger.Debug()
	event.Int("total_kinds", len(kinds))
	arrayLogger := zerolog.Arr()
	for _, kind := range kinds {
		arrayLogger = loadKindIntoArrayLogger(kind, arrayLogger)
	}
	event.Array("kinds", arrayLogger)
	if capacity > 0 {
		event.Int("capacity", capacity)
	}
	event.Msg("registry configured")
}
