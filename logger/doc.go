// Package logger provides a process-wide, thread-safe logger with two
// independently locked outputs and blocking prompt helpers.
//
// # Outputs
//
// Informational output (Print, Printv, and the GetLine/GetChar prompts) goes to
// stdout and error output (Error, ErrorWithErrno) goes to stderr. Either can be
// redirected to a file:
//
//	if err := logger.UseInfoFile("/var/log/app.log"); err != nil {
//	    logger.Error(err.Error())
//	}
//
// Each output has its own mutex, so a slow info write never delays an error write.
// Every line is the caller's text followed by a newline; nothing else is added.
//
// # Levels
//
//   - OffLevel: Print and Printv are no-ops
//   - NormalLevel (default): Print is written
//   - VerboseLevel: Print and Printv are written
//
// Error output and prompts are never filtered.
//
// # Usage
//
// There is one Logger per process, created on first use:
//
//	logger.SetLevel(logger.VerboseLevel)
//	logger.Print("starting")
//	logger.Printv("loaded 12 plugins")
//	logger.ErrorWithErrno("open config", int(unix.ENOENT))
//
//	name, err := logger.GetLine("name: ")
//	if errors.Is(err, logger.ErrInputClosed) {
//	    // stdin was closed
//	}
//
// # Redirection while logging
//
// Redirecting an output while other goroutines write to it is safe: a write in
// progress completes on the old target, later writes go to the new file, and the
// old file is closed only after the switch.
package logger
