/*
Package runner implements the interactive session and I/O orchestration for the hanoi solver.

It acts as the bridge between the solver and the outside world. The runner asks
for the puzzle setup through a pluggable IOHandler, re-asking until every answer
is valid, then solves the puzzle and hands the resulting Report back to the
handler for presentation.

# Key Components

  - Runner: collects Settings interactively and executes them.
  - IOHandler: decouples how questions are asked and answers read (text, JSON lines).
  - Ask: the validated-input helper that re-prompts on invalid answers.
  - Report: the solve outcome, renderable as plain text or markdown.

# Usage

	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)

	if _, err := r.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
