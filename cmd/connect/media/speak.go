package media

import (
	"fmt"
	"os"
	"path/filepath"

	htgotts "github.com/hegedustibor/htgo-tts"
	handlers "github.com/hegedustibor/htgo-tts/handlers"
	voices "github.com/hegedustibor/htgo-tts/voices"
)

// Speaker reads messages out loud using mplayer.
type Speaker struct {
	folder string
	sound  bool
}

// NewSpeaker constructs a speaker that keeps its audio in the folder.
func NewSpeaker(folder string, sound bool) *Speaker {
	return &Speaker{
		folder: folder,
		sound:  sound,
	}
}

// Speak says the message and waits for it to finish. Nothing happens when
// the sound is off.
func (s *Speaker) Speak(msg string) error {
	if !s.sound {
		return nil
	}

	speech := htgotts.Speech{Folder: s.folder, Language: voices.English, Handler: &handlers.MPlayer{}}

	audio := filepath.Join(s.folder, "speech.mp3")
	os.Remove(audio)

	fileName, err := speech.CreateSpeechFile(msg, "speech")
	if err != nil {
		return fmt.Errorf("create speech file: %w", err)
	}

	defer os.Remove(audio)

	if err := speech.PlaySpeechFile(fileName); err != nil {
		return fmt.Errorf("play speech file: %w", err)
	}

	return nil
}
