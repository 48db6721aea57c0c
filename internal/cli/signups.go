package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/diegoclair/weekly-signup/internal/config"
	"github.com/diegoclair/weekly-signup/internal/domain/bucket"
	"github.com/diegoclair/weekly-signup/internal/domain/service"
	"github.com/spf13/cobra"
)

func newSignupsCmd() *cobra.Command {
	var bucketKey string
	var listBuckets bool

	cmd := &cobra.Command{
		Use:   "signups",
		Short: "Print the signups of the upcoming Sunday (or another bucket)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			loc, err := cfg.Location()
			if err != nil {
				return err
			}

			repo, closeStore, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			out := cmd.OutOrStdout()

			if listBuckets {
				keys, err := repo.Buckets(cmd.Context())
				if err != nil {
					return err
				}
				for _, key := range keys {
					_, _ = fmt.Fprintln(out, key)
				}
				return nil
			}

			resolver := bucket.NewResolver(loc, cfg.CutoffHour, nil)
			if bucketKey == "" {
				bucketKey = resolver.Current().Key
			}
			if !bucket.ValidKey(bucketKey) {
				return fmt.Errorf("invalid bucket %q, expected YYYYMMDD", bucketKey)
			}

			svc := service.NewInstance(repo, resolver, nil, nil, service.SummaryConfig{})
			signups, err := svc.Signup.ListBucket(cmd.Context(), bucketKey)
			if err != nil {
				return err
			}

			date, _ := time.Parse(bucket.KeyLayout, bucketKey)
			_, _ = fmt.Fprintf(out, "Sonntag, %s (%d)\n", bucket.Display(date), len(signups))

			names := make([]string, 0, len(signups))
			for name := range signups {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				_, _ = fmt.Fprintf(out, "%s: %s\n", name, signups[name])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bucketKey, "bucket", "", "Bucket key (YYYYMMDD), defaults to the upcoming Sunday")
	cmd.Flags().BoolVar(&listBuckets, "all", false, "List all stored bucket keys instead")
	return cmd
}
