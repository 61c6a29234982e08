package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	lerrors "github.com/PolarWolf314/lockbox/internal/errors"
	"github.com/PolarWolf314/lockbox/internal/ui"

	"github.com/atotto/clipboard"
	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// calls ui.EnsureNewline() on the final message and prints it to out.
func startSpinner(out io.Writer, message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stderr)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprint(out, finalMsg)
		}
	}

	return s, cleanup
}

// FormatError turns an error into the message shown to the user.
func FormatError(err error) string {
	cross := ui.Error.Sprint("✗")
	hint := ui.Info.Sprint("→")

	var le *lerrors.Error
	errors.As(err, &le)

	switch lerrors.KindOf(err) {
	case lerrors.KindKeyFileUnreadable:
		path := ""
		if le != nil {
			path = le.Path
		}
		return cross + " Could not read the key file " + ui.Path.Sprint(path) + "\n" +
			hint + " Check the path given to " + ui.Flag.Sprint("--key-file")
	case lerrors.KindAuthentication:
		return cross + " Could not unlock the store: wrong key file, or the store file was modified\n" +
			hint + " Use the same key file the store was created with"
	case lerrors.KindMalformedCiphertext:
		return cross + " The store file is not a lockbox store\n" +
			hint + " Check " + ui.Flag.Sprint("--store") + " and " + ui.Flag.Sprint("--cipher")
	case lerrors.KindCorruptStore:
		return cross + " The store decrypted but its contents are corrupt\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	case lerrors.KindValidation:
		return cross + " " + err.Error()
	default:
		return cross + " " + ui.Error.Sprint("Error: ") + err.Error()
	}
}

// copyToClipboard places text on the system clipboard.
func copyToClipboard(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility available on this system")
	}
	return clipboard.WriteAll(text)
}
