package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/provenly/chainledger/internal/governance"
	"github.com/provenly/chainledger/pkg/chain"
	"github.com/provenly/chainledger/pkg/recordid"
)

// version is overridden via -ldflags "-X main.version=...".
var version = "dev"

var (
	domainFlag string
	jsonOut    bool

	logger *zap.Logger
)

// profiles maps domain names to their chain profiles.
var profiles = map[string]chain.Profile{
	"evidence":  governance.EvidenceProfile,
	"decision":  governance.DecisionProfile,
	"intent":    governance.IntentProfile,
	"execution": governance.ExecutionProfile,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chainaudit",
	Short: "Audit tooling for hash-chained governance ledgers",
	Long: `chainaudit inspects exported ledger snapshots.

It recomputes every digest in the chain and reports the first violation
found: malformed records, broken linkage, tampered fields, or a forged
head pointer. The exit code is non-zero for any violation, so the tool
can gate CI and incident tooling.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		viper.SetEnvPrefix("chainaudit")
		viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		viper.AutomaticEnv()

		if domainFlag == "" {
			domainFlag = viper.GetString("domain")
		}

		if viper.GetBool("verbose") {
			logger, _ = zap.NewDevelopment()
		} else {
			logger, _ = zap.NewProduction()
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&domainFlag, "domain", "", "governance domain (evidence, decision, intent, execution); detected from record ids when empty")
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadSnapshot reads one exported ledger snapshot and resolves its profile.
func loadSnapshot(path string) (chain.Snapshot, chain.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return chain.Snapshot{}, chain.Profile{}, fmt.Errorf("read snapshot: %w", err)
	}

	var s chain.Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return chain.Snapshot{}, chain.Profile{}, fmt.Errorf("parse snapshot %s: %w", path, err)
	}

	name := domainFlag
	if name == "" {
		name, err = detectDomain(s)
		if err != nil {
			return chain.Snapshot{}, chain.Profile{}, err
		}
	}
	p, ok := profiles[name]
	if !ok {
		return chain.Snapshot{}, chain.Profile{}, fmt.Errorf("unknown domain %q", name)
	}
	return s, p, nil
}

// detectDomain infers the governance domain from the snapshot's first
// record id prefix.
func detectDomain(s chain.Snapshot) (string, error) {
	if len(s.Records) == 0 {
		return "", fmt.Errorf("empty snapshot: pass --domain explicitly")
	}
	id, err := recordid.Parse(s.Records[0].RecordID)
	if err != nil {
		return "", fmt.Errorf("cannot detect domain: %w", err)
	}
	for name, p := range profiles {
		if p.Prefix == id.Prefix {
			return name, nil
		}
	}
	return "", fmt.Errorf("no domain carries record prefix %q", id.Prefix)
}

// ── verify ───────────────────────────────────────────────────────────────────

var verifyCmd = &cobra.Command{
	Use:   "verify <snapshot.json> [snapshot.json] ...",
	Short: "Recompute and check the full hash chain of each snapshot",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runVerify,
}

func init() {
	verifyCmd.Flags().BoolVar(&jsonOut, "json", false, "emit one JSON result per snapshot")
}

// verifyResult is the JSON shape of one verification outcome.
type verifyResult struct {
	Path     string `json:"path"`
	LedgerID string `json:"ledger_id"`
	Length   int    `json:"length"`
	Head     string `json:"head_hash"`
	Valid    bool   `json:"valid"`
	Kind     string `json:"violation_kind,omitempty"`
	Index    *int   `json:"violation_index,omitempty"`
	Detail   string `json:"violation_detail,omitempty"`
}

func runVerify(cmd *cobra.Command, args []string) error {
	broken := 0
	enc := json.NewEncoder(os.Stdout)

	for _, path := range args {
		s, p, err := loadSnapshot(path)
		if err != nil {
			return err
		}

		l := chain.FromSnapshot(p, s)
		v := l.Inspect()

		res := verifyResult{
			Path:     path,
			LedgerID: l.ID(),
			Length:   l.Length(),
			Head:     l.HeadHash(),
			Valid:    v == nil,
		}
		if v != nil {
			broken++
			res.Kind = v.Kind.String()
			res.Index = &v.Index
			res.Detail = v.Detail
			logger.Warn("snapshot failed verification",
				zap.String("path", path),
				zap.String("ledger_id", l.ID()),
				zap.String("kind", v.Kind.String()),
				zap.Int("index", v.Index),
			)
		}

		if jsonOut {
			if err := enc.Encode(res); err != nil {
				return err
			}
			continue
		}
		if v == nil {
			fmt.Printf("%s: OK (%s, %d records, head %s)\n", path, l.ID(), l.Length(), short(l.HeadHash()))
		} else {
			fmt.Printf("%s: INVALID (%s) — %s\n", path, l.ID(), v.Error())
		}
	}

	if broken > 0 {
		return fmt.Errorf("%d of %d snapshots failed verification", broken, len(args))
	}
	return nil
}

// ── show ─────────────────────────────────────────────────────────────────────

var showCmd = &cobra.Command{
	Use:   "show <snapshot.json>",
	Short: "Print the record sequence of a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	s, p, err := loadSnapshot(args[0])
	if err != nil {
		return err
	}
	l := chain.FromSnapshot(p, s)

	fmt.Printf("ledger %s (%s): %d records, head %s\n", l.ID(), p.Name, l.Length(), short(l.HeadHash()))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tRECORD ID\tTYPE\tSUBJECT\tTIMESTAMP\tSELF HASH")
	for i, r := range l.Records() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i, r.RecordID, r.RecordType, r.SubjectID, r.Timestamp, short(r.SelfHash))
	}
	return w.Flush()
}

// short abbreviates a hash for table output.
func short(h string) string {
	if len(h) <= 12 {
		return h
	}
	return h[:12] + "…"
}

// ── version ──────────────────────────────────────────────────────────────────

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the chainaudit version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("chainaudit", version)
	},
}
