// Package voice contains the command for entering expenses by speech.
package voice

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/YashG504/expense-tracker/cmd/root"
	"github.com/YashG504/expense-tracker/internal/speech"
	"github.com/YashG504/expense-tracker/internal/voice"

	"github.com/spf13/cobra"
)

var (
	transcript string
	script     string
	confirm    bool

	// Cmd is the voice command.
	Cmd = &cobra.Command{
		Use:   "voice",
		Short: "Turn a spoken command into an expense",
		Long: `Parse a spoken command like "add 20 bucks for coffee" into a draft expense.
The transcript can be passed directly with --transcript, or replayed from a
script file with one interim transcript per line, the last line being the
final one. The draft is only recorded with --confirm.`,
		RunE: runVoice,
	}
)

func init() {
	Cmd.Flags().StringVarP(&transcript, "transcript", "t", "", "Final transcript to parse")
	Cmd.Flags().StringVarP(&script, "script", "s", "", "File of transcripts to replay as a capture session, - for stdin")
	Cmd.Flags().BoolVarP(&confirm, "confirm", "y", false, "Record the draft instead of just showing it")
}

func runVoice(cmd *cobra.Command, args []string) error {
	final, err := finalTranscript(cmd)
	if err != nil {
		return err
	}
	if final == "" {
		cmd.Println("Nothing heard.")
		return nil
	}

	draft, ok := voice.Parse(final)
	if !ok {
		cmd.Printf("Could not find an amount in %q, nothing recorded.\n", final)
		return nil
	}

	cmd.Printf("Heard:       %q\n", final)
	cmd.Printf("Amount:      %s\n", draft.Amount)
	cmd.Printf("Category:    %s\n", draft.Category)
	cmd.Printf("Description: %s\n", draft.Description)

	if !confirm {
		cmd.Println("Draft not recorded. Re-run with --confirm to record it.")
		return nil
	}

	expense, err := root.Application.Ledger().Append(draft)
	if err != nil {
		return fmt.Errorf("failed to record expense: %w", err)
	}
	cmd.Printf("Recorded expense %s\n", expense.ID)
	return nil
}

// finalTranscript resolves the transcript to parse, either directly from the
// flag or by running a replayed capture session.
func finalTranscript(cmd *cobra.Command) (string, error) {
	if transcript != "" {
		return transcript, nil
	}
	if script == "" {
		return "", fmt.Errorf("either --transcript or --script is required")
	}

	var data []byte
	var err error
	if script == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(script)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read transcripts: %w", err)
	}

	var transcripts []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			transcripts = append(transcripts, line)
		}
	}

	recognizer := speech.NewScriptedRecognizer(transcripts...)
	events, err := recognizer.Start(cmd.Context())
	if err != nil {
		if err == speech.ErrUnavailable {
			root.Log.Warn("Speech capture unavailable, voice entry disabled")
			return "", nil
		}
		return "", err
	}

	final, ok := speech.FinalTranscript(events)
	if !ok {
		return "", nil
	}
	return final, nil
}
