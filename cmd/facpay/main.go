package main

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/skaranth/facpay/internal/calculation"
	"github.com/skaranth/facpay/internal/compare"
	"github.com/skaranth/facpay/internal/config"
	"github.com/skaranth/facpay/internal/domain"
	"github.com/skaranth/facpay/internal/paydata"
	"github.com/skaranth/facpay/internal/server"
	"github.com/skaranth/facpay/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var cliLog = logrus.New()

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "facpay %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "facpay",
	Short: "Faculty compensation calculator CLI",
	Long:  "Compares statutory UGC pay against an institution's enhanced offer across the faculty position catalog.",
}

// loadSettings builds the engine inputs from the --settings flag.
func loadSettings(cmd *cobra.Command) (domain.Settings, error) {
	path, _ := cmd.Flags().GetString("settings")
	if path == "" {
		return config.DefaultSettings(), nil
	}
	return config.NewSettingsStore(path).Load()
}

func newEngine(cmd *cobra.Command) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		cliLog.SetLevel(logrus.DebugLevel)
		engine.SetLogger(cliLog)
	}
	return engine
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare statutory pay against the enhanced offer",
	Long:  "Runs the comparison for the whole position catalog, or for a single position when --position is set.",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		engine := newEngine(cmd)

		experience, _ := cmd.Flags().GetInt("experience")
		positionID, _ := cmd.Flags().GetInt("position")
		format, _ := cmd.Flags().GetString("format")

		set := compare.BuildComparisonSet(engine, settings, experience)

		if positionID > 0 {
			position, ok := paydata.PositionByID(positionID)
			if !ok {
				return fmt.Errorf("unknown position id %d", positionID)
			}
			cell := position.SuggestCell(experience)
			if cmd.Flags().Changed("cell") {
				cell, _ = cmd.Flags().GetInt("cell")
			}
			result := engine.CompareAt(settings, position, cell)
			row := compare.PositionComparison{
				PositionID:         position.ID,
				PositionName:       position.Name,
				Level:              position.Level,
				Cell:               cell,
				Result:             result,
				BaselineMonthly:    result.Baseline.TotalMonthly,
				EnhancedCTCMonthly: result.Enhanced.TotalCTCMonthly,
				PremiumMonthly:     result.PremiumAmountMonthly,
				PremiumAnnual:      result.PremiumAmountAnnual,
				PremiumPercent:     result.PremiumPercentage,
				PolicyViolated:     result.Enhanced.Enforcement.Violated(),
			}
			tf := &compare.TableFormatter{}
			fmt.Print(tf.FormatDetail(&row))
			return nil
		}

		switch format {
		case "json":
			jf := &compare.JSONFormatter{Pretty: true}
			out, err := jf.Format(set)
			if err != nil {
				return err
			}
			fmt.Println(out)
		case "csv":
			cf := &compare.CSVFormatter{}
			out, err := cf.Format(set)
			if err != nil {
				return err
			}
			fmt.Print(out)
		default:
			tf := &compare.TableFormatter{}
			fmt.Print(tf.Format(set))
		}
		return nil
	},
}

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project statutory pay under the next pay commission",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		engine := newEngine(cmd)

		positionID, _ := cmd.Flags().GetInt("position")
		position, ok := paydata.PositionByID(positionID)
		if !ok {
			return fmt.Errorf("unknown position id %d", positionID)
		}

		cell, _ := cmd.Flags().GetInt("cell")
		fitmentStr, _ := cmd.Flags().GetString("fitment")
		fitment, err := decimal.NewFromString(fitmentStr)
		if err != nil || fitment.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("fitment factor must be a positive number, got %q", fitmentStr)
		}
		nextDAStr, _ := cmd.Flags().GetString("next-da")
		nextDA, err := decimal.NewFromString(nextDAStr)
		if err != nil || nextDA.IsNegative() {
			return fmt.Errorf("next dearness percent must be a non-negative number, got %q", nextDAStr)
		}

		result := engine.Project(settings, position, cell, fitment, nextDA)

		fmt.Printf("%s (level %s, cell %d), fitment %s, next DA %s%%\n",
			position.Name, position.Level, cell, fitment.StringFixed(2), nextDA.StringFixed(0))
		fmt.Printf("  Projected basic:   %s\n", result.Projected.BasicPay.StringFixed(0))
		fmt.Printf("  Projected monthly: %s\n", result.Projected.TotalMonthly.StringFixed(0))
		fmt.Printf("  Projected annual:  %s\n", result.Projected.TotalAnnual.StringFixed(0))
		fmt.Printf("  Uplift:            %s%%\n", result.UpliftPercent.StringFixed(1))
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [settings-file]",
	Short: "Validate a policy settings file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.NewSettingsStore(args[0]).Load()
		if err != nil {
			return err
		}
		fmt.Printf("Settings file is valid (schema v%d, strategy %s, method %s)\n",
			settings.SchemaVersion, settings.Strategy, settings.Method)
		return nil
	},
}

var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "List the faculty position catalog",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-4s %-32s %-6s %-12s %s\n", "ID", "Position", "Level", "Experience", "Special")
		for _, p := range paydata.Positions() {
			special := "-"
			if p.SpecialAllowance != nil {
				special = p.SpecialAllowance.StringFixed(0)
			}
			fmt.Printf("%-4d %-32s %-6s %2d-%-2d yrs   %s\n",
				p.ID, p.Name, p.Level, p.ExperienceMin, p.ExperienceMax, special)
		}
	},
}

var matrixCmd = &cobra.Command{
	Use:   "matrix [level]",
	Short: "Print the pay matrix ladder for an academic level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, ok := paydata.LevelByID(args[0])
		if !ok {
			return fmt.Errorf("unknown academic level %q", args[0])
		}
		fmt.Printf("Level %s (%s, entry %s, %d cells)\n",
			level.ID, level.PayBand, level.RationalisedEntryPay.StringFixed(0), level.Cells)
		for i, basic := range paydata.CellsFor(level.ID) {
			fmt.Printf("  %3d  %s\n", i, basic.StringFixed(0))
		}
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the compensation API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; flags and the environment still apply without it.
		_ = godotenv.Load()

		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		engine := newEngine(cmd)

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			if port := os.Getenv("PORT"); port != "" {
				addr = ":" + port
			} else {
				addr = ":8080"
			}
		}

		srv := server.NewServer(engine, settings, cliLog)
		return srv.ListenAndServe(addr)
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive compensation explorer",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		engine := calculation.NewCalculationEngine()

		p := tea.NewProgram(tui.NewModel(engine, settings), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("explorer failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("settings", "", "Path to policy settings YAML (defaults apply when unset)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output for detailed calculations")

	compareCmd.Flags().IntP("experience", "e", 0, "Years of experience (selects the pay cell)")
	compareCmd.Flags().IntP("position", "p", 0, "Position id for a single-position detail view")
	compareCmd.Flags().Int("cell", 0, "Explicit pay cell (overrides the experience suggestion)")
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, json, csv)")

	projectCmd.Flags().IntP("position", "p", 0, "Position id (required)")
	projectCmd.Flags().Int("cell", 0, "Pay cell")
	projectCmd.Flags().String("fitment", "2.57", "Fitment factor for the next commission")
	projectCmd.Flags().String("next-da", "0", "Dearness percent after the next commission reset")

	serveCmd.Flags().String("addr", "", "Listen address (default :8080, or PORT from the environment)")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(positionsCmd)
	rootCmd.AddCommand(matrixCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	cliLog.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
