package spellcheck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

const gitlabTemplate = `stages: [test]

spelling:
  stage: test
  image: golang:1.25
  script:
    - apt-get update && apt-get install -y hunspell-ru
    - go install github.com/redactyl/spellcheck@latest
    - spellcheck {{input}} "" {{exceptions}} --output gl-code-quality-report.json --fail-on major
  artifacts:
    when: always
    reports:
      codequality: gl-code-quality-report.json
`

const githubTemplate = `name: spelling
on: [push, pull_request]

jobs:
  spelling:
    runs-on: ubuntu-latest
    permissions:
      security-events: write
    steps:
      - uses: actions/checkout@v4
      - uses: actions/setup-go@v5
        with:
          go-version: '1.25'
      - run: sudo apt-get update && sudo apt-get install -y hunspell-ru
      - run: go install github.com/redactyl/spellcheck@latest
      - run: spellcheck {{input}} "" {{exceptions}} --format sarif > spelling.sarif
      - uses: github/codeql-action/upload-sarif@v3
        if: always()
        with:
          sarif_file: spelling.sarif
`

const bitbucketTemplate = `pipelines:
  default:
    - step:
        name: Spelling
        image: golang:1.25
        script:
          - apt-get update && apt-get install -y hunspell-ru
          - go install github.com/redactyl/spellcheck@latest
          - spellcheck {{input}} "" {{exceptions}} --output gl-code-quality-report.json --human-report spelling_report.txt --fail-on major
        artifacts:
          - gl-code-quality-report.json
          - spelling_report.txt
`

// ciTemplate returns the destination path and rendered pipeline for provider.
func ciTemplate(provider, input, exceptions string) (string, string, error) {
	var path, content string
	switch provider {
	case "gitlab":
		path, content = ".gitlab-ci.yml", gitlabTemplate
	case "github":
		path, content = filepath.Join(".github", "workflows", "spelling.yml"), githubTemplate
	case "bitbucket":
		path, content = "bitbucket-pipelines.yml", bitbucketTemplate
	default:
		return "", "", fmt.Errorf("unknown --provider %q. Supported: gitlab, github, bitbucket", provider)
	}
	r := strings.NewReplacer("{{input}}", input, "{{exceptions}}", exceptions)
	return path, r.Replace(content), nil
}

func newCICmd() *cobra.Command {
	ci := &cobra.Command{Use: "ci", Short: "CI template helpers for multiple providers"}

	var provider, input, exceptions, dir string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a CI pipeline template for your provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rel, content, err := ciTemplate(provider, input, exceptions)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, rel)
			// ensure parent directories exist if needed
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
			return nil
		},
	}
	initCmd.Flags().StringVar(&provider, "provider", "", "CI provider: gitlab | github | bitbucket")
	initCmd.Flags().StringVar(&input, "input", "README.md", "file the pipeline checks")
	initCmd.Flags().StringVar(&exceptions, "exceptions", "exceptions.txt", "exception list the pipeline uses")
	initCmd.Flags().StringVar(&dir, "dir", ".", "repository root to write the template into")
	if err := initCmd.MarkFlagRequired("provider"); err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not mark --provider as required:", err)
	}
	ci.AddCommand(initCmd)
	return ci
}
