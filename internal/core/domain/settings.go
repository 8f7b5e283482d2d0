package domain

const unknownDescription = "Unknown"

// OutputFormat defines how commands print their results.
type OutputFormat string

// Available output formats.
const (
	// OutputFormatText prints human-readable lines.
	OutputFormatText OutputFormat = "text"

	// OutputFormatJSON prints indented JSON.
	OutputFormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatText, OutputFormatJSON:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f OutputFormat) Description() string {
	switch f {
	case OutputFormatText:
		return "Text (human readable)"
	case OutputFormatJSON:
		return "JSON (machine readable)"
	default:
		return unknownDescription
	}
}

// DiacriticPlacement controls where the voiceless ring is drawn when a
// symbol has to be composed.
type DiacriticPlacement string

// Available diacritic placements.
const (
	// DiacriticPlacementBelow always uses the ring below (U+0325).
	DiacriticPlacementBelow DiacriticPlacement = "below"

	// DiacriticPlacementAuto uses the ring above (U+030A) on bases with a
	// descender, where a ring below would collide with the glyph.
	DiacriticPlacementAuto DiacriticPlacement = "auto"
)

// IsValid returns true if the placement is recognised.
func (p DiacriticPlacement) IsValid() bool {
	switch p {
	case DiacriticPlacementBelow, DiacriticPlacementAuto:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p DiacriticPlacement) String() string {
	return string(p)
}

// Description returns a human-readable description of the placement.
func (p DiacriticPlacement) Description() string {
	switch p {
	case DiacriticPlacementBelow:
		return "Below (ring under every base)"
	case DiacriticPlacementAuto:
		return "Auto (ring above descenders)"
	default:
		return unknownDescription
	}
}

// StorageBackend identifies where inventories are persisted.
type StorageBackend string

// Available storage backends.
const (
	// StorageBackendSQLite stores inventories in a SQLite database file.
	StorageBackendSQLite StorageBackend = "sqlite"

	// StorageBackendMemory keeps inventories for the life of the process.
	StorageBackendMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageBackendSQLite, StorageBackendMemory:
		return true
	default:
		return false
	}
}

// IsPersistent returns true if data survives a restart.
func (b StorageBackend) IsPersistent() bool {
	return b == StorageBackendSQLite
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageBackendSQLite:
		return "SQLite (persistent)"
	case StorageBackendMemory:
		return "Memory (discarded on exit)"
	default:
		return unknownDescription
	}
}

// OutputSettings holds output configuration.
type OutputSettings struct {
	// Format is the default output format for commands.
	Format OutputFormat
}

// RenderSettings holds rendering configuration.
type RenderSettings struct {
	// VoicelessDiacritic is where the voiceless ring goes.
	VoicelessDiacritic DiacriticPlacement
}

// StorageSettings holds persistence configuration.
type StorageSettings struct {
	// Backend selects the inventory store.
	Backend StorageBackend

	// DataDir overrides the data directory. Empty means ~/.phonet/data.
	DataDir string
}

// MCPSettings holds MCP server configuration.
type MCPSettings struct {
	// RateLimit is the sustained HTTP requests per second. Zero disables
	// limiting.
	RateLimit float64

	// Burst is the largest number of requests allowed at once.
	Burst int
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Output holds output settings.
	Output OutputSettings

	// Render holds rendering settings.
	Render RenderSettings

	// Storage holds storage settings.
	Storage StorageSettings

	// MCP holds MCP server settings.
	MCP MCPSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Output: OutputSettings{
			Format: OutputFormatText,
		},
		Render: RenderSettings{
			VoicelessDiacritic: DiacriticPlacementBelow,
		},
		Storage: StorageSettings{
			Backend: StorageBackendSQLite,
		},
		MCP: MCPSettings{
			RateLimit: 10,
			Burst:     20,
		},
	}
}

// AllOutputFormats returns all available output formats.
func AllOutputFormats() []OutputFormat {
	return []OutputFormat{OutputFormatText, OutputFormatJSON}
}

// AllDiacriticPlacements returns all available diacritic placements.
func AllDiacriticPlacements() []DiacriticPlacement {
	return []DiacriticPlacement{DiacriticPlacementBelow, DiacriticPlacementAuto}
}

// AllStorageBackends returns all available storage backends.
func AllStorageBackends() []StorageBackend {
	return []StorageBackend{StorageBackendSQLite, StorageBackendMemory}
}
