package cmd

import (
	"fmt"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/manifoldco/promptui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"os"
	"statusdrafter/pkg/config"
	"strconv"
	"strings"
	"time"
)

var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "create or view statusdrafter configurations",
	Long: `
Configurations are read from config.yml in the working directory, environment
variables (STATUSDRAFTER_*, OPENROUTER_*) override the file.

Usage:

	config init

This will go through the configuration init flow.
`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write config.yml from a series of prompts",
	Long: `
Prompts for the server address, the database file, the timezone drafts are
dated in and the OpenRouter credentials, then writes config.yml.
Current values are offered as defaults.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Initialize statusdrafter")

		fs := afero.NewOsFs()
		path := config.ConfigFilePath()
		configs := config.LoadConfigurations(fs, path)

		prompts := []struct {
			label    string
			value    *string
			mask     rune
			validate promptui.ValidateFunc
		}{
			{label: "Host", value: &configs.Host},
			{label: "Port", value: &configs.Port, validate: validatePort},
			{label: "Database File", value: &configs.DBPath},
			{label: "Static Directory (empty to disable)", value: &configs.StaticDir},
			{label: "Timezone", value: &configs.Timezone, validate: validateTimezone},
			{label: "OpenRouter API Key", value: &configs.OpenRouterAPIKey, mask: '*'},
			{label: "OpenRouter Model", value: &configs.OpenRouterModel},
		}

		for _, p := range prompts {
			prompt := promptui.Prompt{
				Label:     p.label,
				Default:   *p.value,
				AllowEdit: p.mask == 0,
				Mask:      p.mask,
				Validate:  p.validate,
			}
			value, err := prompt.Run()
			if err != nil {
				return err
			}
			*p.value = strings.TrimSpace(value)
		}

		levelPrompt := promptui.Select{
			Label: "Log Level",
			Items: []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"},
		}
		_, level, err := levelPrompt.Run()
		if err != nil {
			return err
		}
		configs.LogLevel = level

		if err := config.SaveConfigurations(fs, path, configs); err != nil {
			return fmt.Errorf("unable to save configurations: %w", err)
		}
		fmt.Printf("configurations saved to %s\n", path)
		return nil
	},
}

var showSecrets = false

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "This will show the configurations that have been set.",
	Long: `
Prints the effective configurations after the file and environment are
applied. The OpenRouter API key is masked unless --show-secrets is passed.
`,
	Run: func(cmd *cobra.Command, args []string) {
		configs := config.NewStatusDrafterConfig().GetConfigurations()

		apiKey := configs.OpenRouterAPIKey
		if !showSecrets && apiKey != "" {
			apiKey = strings.Repeat("*", 8)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Key", "Value"})
		t.AppendRows([]table.Row{
			{"LogLevel", configs.LogLevel},
			{"Host", configs.Host},
			{"Port", configs.Port},
			{"DBPath", configs.DBPath},
			{"StaticDir", configs.StaticDir},
			{"Timezone", configs.Timezone},
			{"EnhanceTimeoutSeconds", configs.EnhanceTimeoutSeconds},
			{"OpenRouterAPIKey", apiKey},
			{"OpenRouterModel", configs.OpenRouterModel},
			{"OpenRouterURL", configs.OpenRouterURL},
		})
		t.Render()
	},
}

func validatePort(input string) error {
	port, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid port %q", input)
	}
	return nil
}

func validateTimezone(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	_, err := time.LoadLocation(strings.TrimSpace(input))
	return err
}

func init() {
	configShowCmd.Flags().BoolVarP(&showSecrets, "show-secrets", "s", false, "print the OpenRouter API key")

	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
}
