package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundDamage
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int     `yaml:"sampleRate"`
	DefaultMusicVol float64 `yaml:"musicVolume"`
	DefaultSFXVol   float64 `yaml:"sfxVolume"`

	// Sample rate used when synthesising placeholder WAV files.
	PlaceholderRate int `yaml:"placeholderRate"`
}

// SoundConfig maps sound IDs to file paths relative to the asset dir
type SoundConfig struct {
	Music    string             `yaml:"music"`
	SFXPaths map[SoundID]string `yaml:"sfx"`
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.5,
		DefaultSFXVol:   1.0,
		PlaceholderRate: 22050,
	}

	Sound = SoundConfig{
		Music: "sounds/music.wav",
		SFXPaths: map[SoundID]string{
			SoundDamage: "sounds/hit.wav",
		},
	}
}
