package services

import "strings"

// ModelFamily derives the family prefix from a model code: the prefix up to
// the first digit, at least two characters ("PC200-8" -> "PC", "320D2" ->
// "32"). A code without digits keeps its first three characters.
func ModelFamily(modelCode string) string {
	for i := 0; i < len(modelCode); i++ {
		if modelCode[i] >= '0' && modelCode[i] <= '9' {
			end := i
			if end < 2 {
				end = 2
			}
			if end > len(modelCode) {
				end = len(modelCode)
			}
			return modelCode[:end]
		}
	}
	if len(modelCode) > 3 {
		return modelCode[:3]
	}
	return modelCode
}

// EngineManufacturer is the first whitespace-delimited token of the engine
// designation ("Komatsu SAA6D107E-1" -> "Komatsu"), or empty when the engine
// is unknown.
func EngineManufacturer(engine string) string {
	fields := strings.Fields(engine)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
