package config

// FallbackFileName is used when nothing is left of requested output name.
const FallbackFileName = "stylesheet"

func fileNameOrFallback(name string) string {
	if len(name) == 0 {
		return FallbackFileName
	}
	return name
}
