package cmd

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/LukeCarrier/signin/internal/catalog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	localesDir     string
	localesDefault string
)

var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "List the locales available in a lang-pack directory",
	Run: func(cmd *cobra.Command, args []string) {
		cat, err := catalog.New(afero.NewOsFs(), localesDir, localesDefault)
		if err != nil {
			log.Fatalf("Failed to load lang packs: %v", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LOCALE")
		for _, tag := range cat.Locales() {
			fmt.Fprintln(w, tag.String())
		}
		w.Flush()
	},
}

func init() {
	localesCmd.Flags().StringVar(&localesDir, "dir", "lang", "lang-pack directory")
	localesCmd.Flags().StringVar(&localesDefault, "default", "en", "default locale")
	rootCmd.AddCommand(localesCmd)
}
