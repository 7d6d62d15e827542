// Package cli provides the command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/temirov/snapmd/internal/commands"
	"github.com/temirov/snapmd/internal/config"
	"github.com/temirov/snapmd/internal/docs"
	"github.com/temirov/snapmd/internal/output"
	"github.com/temirov/snapmd/internal/scan"
	"github.com/temirov/snapmd/internal/services/clipboard"
	"github.com/temirov/snapmd/internal/services/watch"
	"github.com/temirov/snapmd/internal/tokenizer"
	"github.com/temirov/snapmd/internal/types"
	"github.com/temirov/snapmd/internal/utils"
)

const (
	outputFlagName           = "output"
	outputFlagShorthand      = "o"
	exclusionFlagName        = "exclude"
	exclusionFlagShorthand   = "e"
	ignoreFlagName           = "ignore"
	noDefaultIgnoresFlagName = "no-default-ignores"
	noIgnoreFileFlagName     = "no-ignore-file"
	formatFlagName           = "format"
	summaryFlagName          = "summary"
	tokensFlagName           = "tokens"
	modelFlagName            = "model"
	documentationFlagName    = "doc"
	copyFlagName             = "copy"
	debounceFlagName         = "debounce"
	globalFlagName           = "global"
	forceFlagName            = "force"
	versionFlagName          = "version"
	configFlagName           = "config"
	versionTemplate          = "snapmd version: %s\n"
	defaultPath              = "."
	stdoutOutputPath         = "-"
	defaultOutputFileName    = "project_output.md"
	rootUse                  = "snapmd"
	rootShortDescription     = "snapmd command line interface"
	rootLongDescription      = `snapmd captures a project directory as a single document.
It renders the directory outline, concatenates file contents, and can keep the
snapshot current while files change. Use --format to select markdown, json, or
txtar output, and --version to print the application version.`
	versionFlagDescription = "display application version"
	configFlagDescription  = "path to a configuration file"

	snapshotUse              = "snapshot [path]"
	treeUse                  = "tree [path]"
	watchUse                 = "watch [path]"
	initUse                  = "init"
	snapshotAlias            = "s"
	treeAlias                = "t"
	snapshotShortDescription = "write a project snapshot (" + snapshotAlias + ")"
	treeShortDescription     = "display the project outline (" + treeAlias + ")"
	watchShortDescription    = "regenerate the snapshot on file changes"
	initShortDescription     = "write a default configuration file"

	// snapshotLongDescription provides detailed help for the snapshot command.
	snapshotLongDescription = `Capture the directory outline and file contents into one document.
Use --format to select markdown, json, or txtar output and -o to choose the destination.`
	// snapshotUsageExample demonstrates snapshot command usage.
	snapshotUsageExample = `  # Write a snapshot of the current directory
  snapmd snapshot

  # Print a snapshot to stdout, excluding the vendor directory
  snapmd snapshot -o - -e vendor .`

	// treeLongDescription provides detailed help for the tree command.
	treeLongDescription = `Render the directory outline without file contents.`
	// treeUsageExample demonstrates tree command usage.
	treeUsageExample = `  # Show the outline for a subdirectory
  snapmd tree ./cmd

  # Exclude generated files from the outline
  snapmd tree -e "*.gen.go" .`

	// watchLongDescription provides detailed help for the watch command.
	watchLongDescription = `Write a snapshot, then watch the directory and rewrite the snapshot after
changes settle. Press Ctrl+C to stop watching.`
	// watchUsageExample demonstrates watch command usage.
	watchUsageExample = `  # Keep snapshot.md current while editing
  snapmd watch -o snapshot.md .

  # Rewrite quickly after each change
  snapmd watch --debounce 250ms`

	// initLongDescription provides detailed help for the init command.
	initLongDescription = `Write a default configuration file to the working directory or to the
global configuration directory.`
	// initUsageExample demonstrates init command usage.
	initUsageExample = `  # Create .snapmd.yaml in the current directory
  snapmd init

  # Replace the global configuration
  snapmd init --global --force`

	outputFlagDescription                = "output file path, or '-' for stdout"
	exclusionFlagDescription             = "exclude path pattern"
	ignoreFlagDescription                = "add a directory or file name to the ignore set"
	disableDefaultIgnoresFlagDescription = "do not apply the built-in ignore set"
	disableIgnoreFileFlagDescription     = "do not read " + utils.IgnoreFileName
	formatFlagDescription                = "output format"
	summaryFlagDescription               = "include summary of resulting files"
	tokensFlagDescription                = "include token counts"
	modelFlagDescription                 = "tokenizer model to use for token counting"
	documentationFlagDescription         = "include declaration listings for supported files"
	copyFlagDescription                  = "copy the rendered snapshot to the clipboard"
	debounceFlagDescription              = "quiet period before the snapshot is rewritten"
	globalFlagDescription                = "write the global configuration file"
	forceFlagDescription                 = "overwrite an existing configuration file"
	defaultTokenizerModelName            = "gpt-4o"
	defaultDebounceLiteral               = "1s"
	invalidFormatMessage                 = "Invalid format value '%s'"
	invalidDebounceFormat                = "invalid debounce value '%s': %w"
	initializedConfigurationFormat       = "Configuration written to %s\n"
	clipboardCopyErrorFormat             = "copy output to clipboard: %w"
	// errorAbsolutePathFormat reports failure to resolve an absolute path.
	errorAbsolutePathFormat = "abs failed for '%s': %w"
	// errorPathMissingFormat reports a missing path.
	errorPathMissingFormat = "path '%s' does not exist"
	// errorStatFormat reports failure to retrieve file statistics.
	errorStatFormat = "stat failed for '%s': %w"
	// errorNotDirectoryFormat reports a root path that is not a directory.
	errorNotDirectoryFormat = "path '%s' is not a directory"
	// errorWriteOutputFormat reports failure to write the rendered snapshot.
	errorWriteOutputFormat = "write output to '%s': %w"
)

// isSupportedFormat reports whether the provided format is recognized.
func isSupportedFormat(format string) bool {
	switch format {
	case types.FormatMarkdown, types.FormatJSON, types.FormatTxtar:
		return true
	default:
		return false
	}
}

// Execute runs the snapmd application.
func Execute() error {
	rootCommand := createRootCommand()
	normalizedArguments := normalizeCopyFlagArguments(os.Args[1:])
	rootCommand.SetArgs(normalizeToggleFlagArguments(rootCommand, normalizedArguments))
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var showVersion bool
	var configurationFilePath string

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.PersistentFlags().StringVar(&configurationFilePath, configFlagName, "", configFlagDescription)
	rootCommand.AddCommand(
		createSnapshotCommand(),
		createTreeCommand(),
		createWatchCommand(),
		createInitCommand(),
	)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// snapshotFlagValues stores the raw flag values shared by the snapshot family
// of commands.
type snapshotFlagValues struct {
	outputPath            string
	outputFormat          string
	exclusionPatterns     []string
	ignoreNames           []string
	disableDefaultIgnores bool
	disableIgnoreFile     bool
	summaryEnabled        bool
	documentationEnabled  bool
	copyEnabled           bool
	tokensEnabled         bool
	tokenizerModel        string
	debounceLiteral       string
}

// snapshotSettings holds the effective configuration after builtin defaults,
// configuration files, and command line flags are merged in that order.
type snapshotSettings struct {
	outputPath            string
	outputFormat          string
	exclusionPatterns     []string
	ignoreNames           []string
	includeDefaultIgnores bool
	useIgnoreFile         bool
	summaryEnabled        bool
	documentationEnabled  bool
	copyEnabled           bool
	tokensEnabled         bool
	tokenizerModel        string
	debounce              time.Duration
}

// addPathFlags registers traversal-related flags on the command.
func addPathFlags(command *cobra.Command, flagValues *snapshotFlagValues) {
	command.Flags().StringArrayVarP(&flagValues.exclusionPatterns, exclusionFlagName, exclusionFlagShorthand, nil, exclusionFlagDescription)
	command.Flags().StringArrayVar(&flagValues.ignoreNames, ignoreFlagName, nil, ignoreFlagDescription)
	command.Flags().BoolVar(&flagValues.disableDefaultIgnores, noDefaultIgnoresFlagName, false, disableDefaultIgnoresFlagDescription)
	command.Flags().BoolVar(&flagValues.disableIgnoreFile, noIgnoreFileFlagName, false, disableIgnoreFileFlagDescription)
}

// addSnapshotFlags registers the full snapshot flag surface on the command.
func addSnapshotFlags(command *cobra.Command, flagValues *snapshotFlagValues) {
	addPathFlags(command, flagValues)
	command.Flags().StringVarP(&flagValues.outputPath, outputFlagName, outputFlagShorthand, defaultOutputFileName, outputFlagDescription)
	command.Flags().StringVar(&flagValues.outputFormat, formatFlagName, types.FormatMarkdown, formatFlagDescription)
	registerToggleFlag(command.Flags(), &flagValues.summaryEnabled, summaryFlagName, false, summaryFlagDescription)
	registerToggleFlag(command.Flags(), &flagValues.documentationEnabled, documentationFlagName, false, documentationFlagDescription)
	registerToggleFlag(command.Flags(), &flagValues.tokensEnabled, tokensFlagName, false, tokensFlagDescription)
	command.Flags().StringVar(&flagValues.tokenizerModel, modelFlagName, defaultTokenizerModelName, modelFlagDescription)
	registerCopyFlag(command.Flags(), &flagValues.copyEnabled)
}

// createSnapshotCommand returns the snapshot subcommand.
func createSnapshotCommand() *cobra.Command {
	flagValues := &snapshotFlagValues{}

	snapshotCommand := &cobra.Command{
		Use:     snapshotUse,
		Aliases: []string{snapshotAlias},
		Short:   snapshotShortDescription,
		Long:    snapshotLongDescription,
		Example: snapshotUsageExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			return runSnapshot(command, arguments, flagValues, false)
		},
	}

	addSnapshotFlags(snapshotCommand, flagValues)
	return snapshotCommand
}

// createTreeCommand returns the tree subcommand.
func createTreeCommand() *cobra.Command {
	flagValues := &snapshotFlagValues{}

	treeCommand := &cobra.Command{
		Use:     treeUse,
		Aliases: []string{treeAlias},
		Short:   treeShortDescription,
		Long:    treeLongDescription,
		Example: treeUsageExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			return runTree(command, arguments, flagValues)
		},
	}

	addPathFlags(treeCommand, flagValues)
	registerCopyFlag(treeCommand.Flags(), &flagValues.copyEnabled)
	return treeCommand
}

// createWatchCommand returns the watch subcommand.
func createWatchCommand() *cobra.Command {
	flagValues := &snapshotFlagValues{}

	watchCommand := &cobra.Command{
		Use:     watchUse,
		Short:   watchShortDescription,
		Long:    watchLongDescription,
		Example: watchUsageExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			return runSnapshot(command, arguments, flagValues, true)
		},
	}

	addSnapshotFlags(watchCommand, flagValues)
	watchCommand.Flags().StringVar(&flagValues.debounceLiteral, debounceFlagName, defaultDebounceLiteral, debounceFlagDescription)
	return watchCommand
}

// createInitCommand returns the init subcommand.
func createInitCommand() *cobra.Command {
	var globalTargetEnabled bool
	var forceOverwriteEnabled bool

	initCommand := &cobra.Command{
		Use:     initUse,
		Short:   initShortDescription,
		Long:    initLongDescription,
		Example: initUsageExample,
		Args:    cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			initTarget := config.InitTargetLocal
			if globalTargetEnabled {
				initTarget = config.InitTargetGlobal
			}
			writtenPath, initializationError := config.InitializeConfiguration(config.InitOptions{
				Target: initTarget,
				Force:  forceOverwriteEnabled,
			})
			if initializationError != nil {
				return initializationError
			}
			fmt.Printf(initializedConfigurationFormat, writtenPath)
			return nil
		},
	}

	initCommand.Flags().BoolVar(&globalTargetEnabled, globalFlagName, false, globalFlagDescription)
	initCommand.Flags().BoolVar(&forceOverwriteEnabled, forceFlagName, false, forceFlagDescription)
	return initCommand
}

// loadApplicationConfiguration loads configuration honoring the --config flag.
func loadApplicationConfiguration(command *cobra.Command) (config.ApplicationConfiguration, error) {
	explicitPath, flagError := command.Flags().GetString(configFlagName)
	if flagError != nil {
		explicitPath = ""
	}
	return config.LoadApplicationConfiguration(config.LoadOptions{ExplicitFilePath: explicitPath})
}

// resolveSnapshotSettings merges builtin defaults, configuration values, and
// explicitly set flags into the effective settings. Flags win over
// configuration only when the user set them on the command line.
func resolveSnapshotSettings(command *cobra.Command, flagValues *snapshotFlagValues, configuration config.ApplicationConfiguration) (snapshotSettings, error) {
	settings := snapshotSettings{
		outputPath:            defaultOutputFileName,
		outputFormat:          types.FormatMarkdown,
		includeDefaultIgnores: true,
		useIgnoreFile:         true,
		tokenizerModel:        defaultTokenizerModelName,
		debounce:              watch.DefaultDebounce,
	}

	if configuration.Snapshot.Output != "" {
		settings.outputPath = configuration.Snapshot.Output
	}
	if configuration.Snapshot.Format != "" {
		settings.outputFormat = strings.ToLower(configuration.Snapshot.Format)
	}
	if configuration.Snapshot.Summary != nil {
		settings.summaryEnabled = *configuration.Snapshot.Summary
	}
	if configuration.Snapshot.Documentation != nil {
		settings.documentationEnabled = *configuration.Snapshot.Documentation
	}
	if configuration.Snapshot.Copy != nil {
		settings.copyEnabled = *configuration.Snapshot.Copy
	}
	if configuration.Snapshot.Tokens.Enabled != nil {
		settings.tokensEnabled = *configuration.Snapshot.Tokens.Enabled
	}
	if configuration.Snapshot.Tokens.Model != "" {
		settings.tokenizerModel = configuration.Snapshot.Tokens.Model
	}
	settings.ignoreNames = append(settings.ignoreNames, configuration.Paths.Ignore...)
	settings.exclusionPatterns = append(settings.exclusionPatterns, configuration.Paths.Exclude...)
	if configuration.Paths.UseDefaults != nil {
		settings.includeDefaultIgnores = *configuration.Paths.UseDefaults
	}
	if configuration.Paths.UseIgnoreFile != nil {
		settings.useIgnoreFile = *configuration.Paths.UseIgnoreFile
	}
	if configuration.Watch.Debounce != "" {
		parsedDebounce, parseError := time.ParseDuration(configuration.Watch.Debounce)
		if parseError != nil {
			return snapshotSettings{}, fmt.Errorf(invalidDebounceFormat, configuration.Watch.Debounce, parseError)
		}
		settings.debounce = parsedDebounce
	}

	commandFlags := command.Flags()
	if commandFlags.Changed(outputFlagName) {
		settings.outputPath = flagValues.outputPath
	}
	if commandFlags.Changed(formatFlagName) {
		settings.outputFormat = strings.ToLower(flagValues.outputFormat)
	}
	settings.exclusionPatterns = append(settings.exclusionPatterns, flagValues.exclusionPatterns...)
	settings.ignoreNames = append(settings.ignoreNames, flagValues.ignoreNames...)
	if flagValues.disableDefaultIgnores {
		settings.includeDefaultIgnores = false
	}
	if flagValues.disableIgnoreFile {
		settings.useIgnoreFile = false
	}
	if commandFlags.Changed(summaryFlagName) {
		settings.summaryEnabled = flagValues.summaryEnabled
	}
	if commandFlags.Changed(documentationFlagName) {
		settings.documentationEnabled = flagValues.documentationEnabled
	}
	if commandFlags.Changed(copyFlagName) {
		settings.copyEnabled = flagValues.copyEnabled
	}
	if commandFlags.Changed(tokensFlagName) {
		settings.tokensEnabled = flagValues.tokensEnabled
	}
	if commandFlags.Changed(modelFlagName) {
		settings.tokenizerModel = flagValues.tokenizerModel
	}
	if commandFlags.Changed(debounceFlagName) {
		parsedDebounce, parseError := time.ParseDuration(flagValues.debounceLiteral)
		if parseError != nil {
			return snapshotSettings{}, fmt.Errorf(invalidDebounceFormat, flagValues.debounceLiteral, parseError)
		}
		settings.debounce = parsedDebounce
	}

	settings.exclusionPatterns = utils.DeduplicatePatterns(settings.exclusionPatterns)
	settings.ignoreNames = utils.DeduplicatePatterns(settings.ignoreNames)

	// Token totals render inside the summary section, so counting implies it.
	if settings.tokensEnabled {
		settings.summaryEnabled = true
	}

	if !isSupportedFormat(settings.outputFormat) {
		return snapshotSettings{}, fmt.Errorf(invalidFormatMessage, settings.outputFormat)
	}
	return settings, nil
}

// runTree renders the directory outline to stdout.
func runTree(command *cobra.Command, arguments []string, flagValues *snapshotFlagValues) error {
	configuration, configurationError := loadApplicationConfiguration(command)
	if configurationError != nil {
		return configurationError
	}
	settings, settingsError := resolveSnapshotSettings(command, flagValues, configuration)
	if settingsError != nil {
		return settingsError
	}
	rootPath, rootError := resolveRootDirectory(arguments)
	if rootError != nil {
		return rootError
	}
	scanFilter, filterError := buildScanFilter(settings, rootPath.AbsolutePath)
	if filterError != nil {
		return filterError
	}
	outline, outlineError := commands.BuildOutline(commands.SnapshotOptions{
		Root:   rootPath.AbsolutePath,
		Filter: scanFilter,
	})
	if outlineError != nil {
		return outlineError
	}
	fmt.Print(outline)
	if settings.copyEnabled {
		if copyError := clipboard.NewService().Copy(outline); copyError != nil {
			return fmt.Errorf(clipboardCopyErrorFormat, copyError)
		}
	}
	return nil
}

// runSnapshot generates a snapshot once, or repeatedly when watching.
func runSnapshot(command *cobra.Command, arguments []string, flagValues *snapshotFlagValues, watchEnabled bool) error {
	configuration, configurationError := loadApplicationConfiguration(command)
	if configurationError != nil {
		return configurationError
	}
	settings, settingsError := resolveSnapshotSettings(command, flagValues, configuration)
	if settingsError != nil {
		return settingsError
	}
	rootPath, rootError := resolveRootDirectory(arguments)
	if rootError != nil {
		return rootError
	}
	scanFilter, filterError := buildScanFilter(settings, rootPath.AbsolutePath)
	if filterError != nil {
		return filterError
	}
	target, targetError := resolveOutputTarget(settings.outputPath)
	if targetError != nil {
		return targetError
	}

	var tokenCounter tokenizer.Counter
	var tokenModel string
	if settings.tokensEnabled {
		createdCounter, resolvedModel, counterError := tokenizer.NewCounter(tokenizer.Config{Model: settings.tokenizerModel})
		if counterError != nil {
			return counterError
		}
		tokenCounter = createdCounter
		tokenModel = resolvedModel
	}

	var collector *docs.Collector
	if settings.documentationEnabled {
		collector = docs.NewCollector()
	}

	run := snapshotRun{
		settings:     settings,
		rootPath:     rootPath.AbsolutePath,
		filter:       scanFilter,
		target:       target,
		tokenCounter: tokenCounter,
		tokenModel:   tokenModel,
		collector:    collector,
		copier:       clipboard.NewService(),
	}

	if !watchEnabled {
		return run.generate(context.Background())
	}

	loggerInstance, loggerInitializationError := utils.NewApplicationLogger()
	if loggerInitializationError != nil {
		return fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError)
	}
	defer func() {
		_ = loggerInstance.Sync()
	}()

	if initialError := run.generate(context.Background()); initialError != nil {
		return initialError
	}

	watchService, serviceError := watch.NewService(watch.Options{
		Root:     rootPath.AbsolutePath,
		SkipPath: target.absolutePath,
		Filter:   scanFilter,
		Debounce: settings.debounce,
		Logger:   loggerInstance,
		Regenerate: func() error {
			return run.generate(context.Background())
		},
	})
	if serviceError != nil {
		return serviceError
	}

	executionContext, stopSignalHandling := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignalHandling()

	if runError := watchService.Run(executionContext); runError != nil && !errors.Is(runError, context.Canceled) {
		return runError
	}
	return nil
}

// snapshotRun bundles everything needed to generate one snapshot so the watch
// command can regenerate with identical settings.
type snapshotRun struct {
	settings     snapshotSettings
	rootPath     string
	filter       *scan.Filter
	target       outputTarget
	tokenCounter tokenizer.Counter
	tokenModel   string
	collector    *docs.Collector
	copier       clipboard.Copier
}

// generate builds the document, renders it, and delivers it to the output
// target and optionally the clipboard.
func (run *snapshotRun) generate(executionContext context.Context) error {
	document, buildError := commands.BuildSnapshot(executionContext, commands.SnapshotOptions{
		Root:           run.rootPath,
		Filter:         run.filter,
		SkipPath:       run.target.absolutePath,
		TokenCounter:   run.tokenCounter,
		TokenModel:     run.tokenModel,
		Collector:      run.collector,
		IncludeSummary: run.settings.summaryEnabled,
		Warn: func(message string) {
			fmt.Fprint(os.Stderr, message)
		},
	})
	if buildError != nil {
		return buildError
	}
	rendered, renderError := renderSnapshotDocument(run.settings.outputFormat, document)
	if renderError != nil {
		return renderError
	}
	if writeError := run.target.write(rendered); writeError != nil {
		return writeError
	}
	if run.settings.copyEnabled {
		if copyError := run.copier.Copy(rendered); copyError != nil {
			return fmt.Errorf(clipboardCopyErrorFormat, copyError)
		}
	}
	return nil
}

// renderSnapshotDocument renders the document in the requested format.
func renderSnapshotDocument(format string, document *types.SnapshotDocument) (string, error) {
	switch format {
	case types.FormatJSON:
		return output.RenderJSON(document)
	case types.FormatTxtar:
		return output.RenderTxtar(document), nil
	default:
		return output.RenderMarkdown(document)
	}
}

// buildScanFilter combines the ignore set, exclusion patterns, and the root
// ignore file into a single traversal filter.
func buildScanFilter(settings snapshotSettings, rootPath string) (*scan.Filter, error) {
	patterns := append([]string{}, settings.exclusionPatterns...)
	if settings.useIgnoreFile {
		rootPatterns, loadError := config.LoadRootIgnorePatterns(rootPath)
		if loadError != nil {
			return nil, loadError
		}
		patterns = append(patterns, rootPatterns...)
	}
	return scan.NewFilter(scan.FilterOptions{
		Names:           settings.ignoreNames,
		Patterns:        utils.DeduplicatePatterns(patterns),
		IncludeDefaults: settings.includeDefaultIgnores,
	}), nil
}

// outputTarget identifies where the rendered snapshot is delivered. An empty
// absolute path means stdout.
type outputTarget struct {
	absolutePath string
}

// resolveOutputTarget resolves the output path relative to the working
// directory. The resolved path is also skipped during traversal so a snapshot
// never captures itself.
func resolveOutputTarget(outputPath string) (outputTarget, error) {
	if outputPath == stdoutOutputPath {
		return outputTarget{}, nil
	}
	absolutePath, absolutePathError := filepath.Abs(outputPath)
	if absolutePathError != nil {
		return outputTarget{}, fmt.Errorf(errorAbsolutePathFormat, outputPath, absolutePathError)
	}
	return outputTarget{absolutePath: filepath.Clean(absolutePath)}, nil
}

// write delivers the rendered snapshot to the target.
func (target outputTarget) write(content string) error {
	if target.absolutePath == "" {
		_, writeError := fmt.Fprint(os.Stdout, content)
		return writeError
	}
	if writeError := os.WriteFile(target.absolutePath, []byte(content), 0o644); writeError != nil {
		return fmt.Errorf(errorWriteOutputFormat, target.absolutePath, writeError)
	}
	return nil
}

// resolveRootDirectory converts the optional path argument to absolute form
// and validates that it names an existing directory.
func resolveRootDirectory(arguments []string) (types.ValidatedPath, error) {
	inputPath := defaultPath
	if len(arguments) > 0 {
		inputPath = arguments[0]
	}
	absolutePath, absolutePathError := filepath.Abs(inputPath)
	if absolutePathError != nil {
		return types.ValidatedPath{}, fmt.Errorf(errorAbsolutePathFormat, inputPath, absolutePathError)
	}
	cleanPath := filepath.Clean(absolutePath)
	information, fileStatusError := os.Stat(cleanPath)
	if fileStatusError != nil {
		if os.IsNotExist(fileStatusError) {
			return types.ValidatedPath{}, fmt.Errorf(errorPathMissingFormat, inputPath)
		}
		return types.ValidatedPath{}, fmt.Errorf(errorStatFormat, inputPath, fileStatusError)
	}
	if !information.IsDir() {
		return types.ValidatedPath{}, fmt.Errorf(errorNotDirectoryFormat, inputPath)
	}
	return types.ValidatedPath{AbsolutePath: cleanPath, IsDir: true}, nil
}
