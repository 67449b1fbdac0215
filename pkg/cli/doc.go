/*
Package cli provides command-line interface utilities for the librml command.

Output Formatting:

Command reports (validation results, template listings) can be printed as
text, JSON or YAML:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, report); err != nil {
		return err
	}

Progress Reporting:

Batch validation reports progress on stderr:

	progress := cli.NewProgressReporter(os.Stderr)
	progress.Start(len(files))
	for _, f := range files {
		progress.Advance(f, validate(f))
	}
	ok, failed := progress.Finish()

Signal Handling:

Long-running commands such as template watch stop on SIGINT/SIGTERM:

	ctx, stop := cli.SetupSignalHandler(context.Background())
	defer stop()

Errors:

ConfigError marks usage and configuration problems, which exit with status
2; every other failure exits with status 1 (see ExitCode).
*/
package cli
