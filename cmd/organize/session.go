package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"fileorg/internal/model"
	"fileorg/internal/scanner"
	"fileorg/internal/service"
)

// request carries the values already known for one directory; empty fields
// are prompted for.
type request struct {
	dir      string
	strategy string
	sort     string
}

// session is one interactive conversation on a terminal.
type session struct {
	in  *bufio.Reader
	out io.Writer
	svc service.OrganizerService
	yes bool
}

func (s *session) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *session) confirm(prompt string) (bool, error) {
	answer, err := s.ask(prompt)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "yes", "y":
		return true, nil
	}
	return false, nil
}

func (s *session) chooseStrategy(preset string) (model.Strategy, error) {
	if preset != "" {
		st, err := model.ParseStrategy(preset)
		if err != nil {
			return 0, err
		}
		if st == model.StrategyAI && !s.svc.AIEnabled() {
			return 0, errors.New("ai strategy needs AI_PROVIDER and an API key")
		}
		return st, nil
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, headingStyle.Render("Categorization strategy"))
	fmt.Fprintln(s.out, "  1. By file extension")
	fmt.Fprintln(s.out, "  2. By creation date")
	fmt.Fprintln(s.out, "  3. By filename pattern")
	fmt.Fprintln(s.out, "  4. Manual")
	if s.svc.AIEnabled() {
		fmt.Fprintln(s.out, "  5. By content (AI)")
	}
	for {
		v, err := s.ask("Choose a strategy: ")
		if err != nil {
			return 0, err
		}
		st, err := model.ParseStrategy(v)
		if err == nil && (st != model.StrategyAI || s.svc.AIEnabled()) {
			return st, nil
		}
		fmt.Fprintln(s.out, warnStyle.Render("Invalid choice, try again."))
	}
}

func (s *session) chooseSort(preset string) (model.SortKey, error) {
	if preset != "" {
		return model.ParseSortKey(preset)
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, headingStyle.Render("Processing order"))
	fmt.Fprintln(s.out, "  1. Name")
	fmt.Fprintln(s.out, "  2. Creation time")
	fmt.Fprintln(s.out, "  3. Modification time")
	fmt.Fprintln(s.out, "  4. Size, smallest first")
	fmt.Fprintln(s.out, "  5. Size, largest first")
	for {
		v, err := s.ask("Choose an order [1]: ")
		if err != nil {
			return 0, err
		}
		key, err := model.ParseSortKey(v)
		if err == nil {
			return key, nil
		}
		fmt.Fprintln(s.out, warnStyle.Render("Invalid choice, try again."))
	}
}

// manualOverrides asks for a category per file, offering the extension
// suggestion as the default.
func (s *session) manualOverrides(files []model.FileRecord) (map[string]string, error) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, headingStyle.Render("Manual categorization"))
	overrides := make(map[string]string, len(files))
	for _, f := range files {
		suggestion := s.svc.Suggest(f)
		v, err := s.ask(fmt.Sprintf("Category for %s [%s]: ", f.Name, suggestion))
		if err != nil {
			return nil, err
		}
		if v == "" {
			v = suggestion
		}
		overrides[f.Name] = v
	}
	return overrides, nil
}

func (s *session) printTree(title, dir string, lines []string) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, headingStyle.Render(title))
	fmt.Fprintln(s.out, treeStyle.Render(filepath.Base(filepath.Clean(dir))+"/"))
	for _, l := range lines {
		fmt.Fprintln(s.out, treeStyle.Render(l))
	}
}

// organize runs one directory through preview, confirmation and move.
// Only I/O failures on the terminal are returned; problems with the
// directory itself are reported and end this round.
func (s *session) organize(ctx context.Context, req request) error {
	dir := req.dir
	for dir == "" {
		v, err := s.ask("\nEnter the directory path to organize: ")
		if err != nil {
			return err
		}
		dir = v
	}

	st, err := s.chooseStrategy(req.strategy)
	if err != nil {
		fmt.Fprintln(s.out, errorStyle.Render("Error: "+err.Error()))
		return nil
	}
	key, err := s.chooseSort(req.sort)
	if err != nil {
		fmt.Fprintln(s.out, errorStyle.Render("Error: "+err.Error()))
		return nil
	}

	snap, err := s.svc.Scan(ctx, dir, key)
	if err != nil {
		if errors.Is(err, scanner.ErrDirectoryNotFound) {
			fmt.Fprintln(s.out, errorStyle.Render("Error: directory not found: "+dir))
			return nil
		}
		fmt.Fprintln(s.out, errorStyle.Render("Error: "+err.Error()))
		return nil
	}
	fmt.Fprintln(s.out, mutedStyle.Render(fmt.Sprintf("Scanned %d files in %.3fs", len(snap.Files), snap.ScanDuration.Seconds())))
	if len(snap.Files) == 0 {
		fmt.Fprintln(s.out, warnStyle.Render("No files to organize."))
		return nil
	}
	s.printTree("Current structure", dir, snap.CurrentTree)

	var overrides map[string]string
	if st == model.StrategyManual {
		if overrides, err = s.manualOverrides(snap.Files); err != nil {
			return err
		}
	}

	plan, err := s.svc.Plan(ctx, snap, st, overrides)
	if err != nil {
		fmt.Fprintln(s.out, errorStyle.Render("Error: "+err.Error()))
		return nil
	}
	s.printTree("Proposed structure", dir, plan.ProposedTree)

	if !s.yes {
		ok, err := s.confirm("\nProceed with organization? (yes/no): ")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(s.out, warnStyle.Render("Organization cancelled."))
			return nil
		}
	}

	res, err := s.svc.Organize(ctx, plan)
	if err != nil {
		fmt.Fprintln(s.out, errorStyle.Render("Error: "+err.Error()))
		return nil
	}
	s.printResult(res)
	return nil
}

func (s *session) printResult(res *service.Result) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, headingStyle.Render("Results"))
	for _, r := range res.Report.Results {
		switch r.Outcome {
		case model.OutcomeMoved:
			fmt.Fprintln(s.out, okStyle.Render(fmt.Sprintf("  moved    %s → %s", r.Name, r.Category)))
		case model.OutcomeSkipped:
			fmt.Fprintln(s.out, mutedStyle.Render(fmt.Sprintf("  skipped  %s (already in %s)", r.Name, r.Category)))
		default:
			fmt.Fprintln(s.out, errorStyle.Render(fmt.Sprintf("  failed   %s → %s: %s", r.Name, r.Category, r.Reason)))
		}
	}
	fmt.Fprintf(s.out, "%d moved, %d skipped, %d failed\n", res.Report.Moved, res.Report.Skipped, res.Report.Failed)

	s.printTree("Result", res.Directory, res.ResultTree)
	if res.AuditLog != "" {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, mutedStyle.Render("Audit log: "+res.AuditLog))
	}
	if res.Recorded {
		fmt.Fprintln(s.out, mutedStyle.Render("Run recorded as "+res.RunID))
	}
}
