package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/codegrade/codegrade/internal/core"
	"github.com/codegrade/codegrade/internal/gitutil"
	"github.com/codegrade/codegrade/internal/wire"
)

var (
	verbose     bool
	useClone    bool
	description string
	level       string
)

// Color definitions
var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.FgHiBlack)
)

var reviewCmd = &cobra.Command{
	Use:   "review [repo-url]",
	Short: "Review a candidate's GitHub repository with Mistral AI",
	Long: `Review a candidate's GitHub repository with Mistral AI.

The review command collects the repository's source files, builds a review
prompt scaled to the candidate's level, and prints the model's feedback as
rendered Markdown.

Examples:
  codegrade-cli review https://github.com/owner/repo --level Junior --description "REST API homework"
  codegrade-cli review --clone --verbose https://github.com/owner/repo --level Senior`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	reviewCmd.Flags().StringVarP(&description, "description", "d", "", "Short description of the assignment")
	reviewCmd.Flags().StringVarP(&level, "level", "l", "Junior", "Candidate level: Junior, Middle, or Senior")
	reviewCmd.Flags().BoolVarP(&useClone, "clone", "c", false, "Clone the repository instead of using the GitHub API")
	reviewCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output with timing information")
	_ = reviewCmd.MarkFlagRequired("description")
	rootCmd.AddCommand(reviewCmd)
}

// stepTimer tracks timing for verbose output
type stepTimer struct {
	stepNum    int
	totalSteps int
	start      time.Time
	verbose    bool
}

func newStepTimer(totalSteps int, verbose bool) *stepTimer {
	return &stepTimer{
		stepNum:    0,
		totalSteps: totalSteps,
		verbose:    verbose,
	}
}

func (t *stepTimer) step(name string) {
	t.stepNum++
	t.start = time.Now()
	if t.verbose {
		titleColor.Printf("\nStep %d/%d: %s...\n", t.stepNum, t.totalSteps, name)
	} else {
		fmt.Printf("%s...\n", name)
	}
}

func (t *stepTimer) done(details ...string) {
	if t.verbose {
		elapsed := time.Since(t.start).Round(time.Millisecond)
		successColor.Printf("   done (%s)\n", elapsed)
		for _, d := range details {
			dimColor.Printf("   %s\n", d)
		}
	}
}

func runReview(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	repoURL := args[0]

	req := &core.ReviewRequest{
		AssignmentDescription: description,
		GitHubRepoURL:         repoURL,
		CandidateLevel:        level,
	}
	if vErr := req.Validate(); vErr != nil {
		for _, msg := range vErr.Messages {
			errorColor.Println(msg)
		}
		return fmt.Errorf("invalid review request")
	}

	timer := newStepTimer(3, verbose)
	overallStart := time.Now()

	titleColor.Println("CodeGrade - Project Review")
	dimColor.Printf("   Target: %s (%s)\n", repoURL, level)

	timer.step("Initializing application")
	appInstance, cleanup, err := wire.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer cleanup()
	timer.done()

	var reviewText string
	if useClone {
		timer.step("Cloning repository")
		cloner := gitutil.NewCloner(appInstance.Logger)
		dir, cleanupDir, cloneErr := cloner.CloneTemp(ctx, repoURL)
		if cloneErr != nil {
			return fmt.Errorf("failed to clone repository: %w", cloneErr)
		}
		defer cleanupDir()
		timer.done(fmt.Sprintf("Path: %s", dir))

		timer.step("Generating review")
		reviewText, err = appInstance.Reviewer.RunLocal(ctx, req, dir)
	} else {
		timer.step("Collecting repository content")
		timer.done()

		timer.step("Generating review")
		reviewText, err = appInstance.Reviewer.Run(ctx, req)
	}
	if err != nil {
		return fmt.Errorf("failed to generate review: %w", err)
	}
	timer.done()

	if verbose {
		dimColor.Printf("\nTotal time: %s\n", time.Since(overallStart).Round(time.Millisecond))
	}

	printReview(reviewText)
	return nil
}

// printReview renders the Markdown review for the terminal, falling back to
// plain text when rendering fails.
func printReview(reviewText string) {
	rendered, err := glamour.Render(reviewText, "dark")
	if err != nil {
		fmt.Println(reviewText)
		return
	}
	fmt.Println(rendered)
}
