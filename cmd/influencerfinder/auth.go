package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"influencerfinder/pkg/auth"
	"influencerfinder/pkg/ui"
)

var (
	loginKey  string
	loginHost string
	skipGuide bool
)

// authCmd represents the auth command
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage RapidAPI credentials",
	Long: `Manage the RapidAPI credentials used by live mode.

Credentials are stored using:
  - System keychain (when available)
  - Encrypted file in the user config directory
  - RAPIDAPI_KEY and RAPIDAPI_HOST environment variables (read only)

Values from the config file or environment always take precedence.`,
}

// loginCmd represents the auth login command
var loginCmd = &cobra.Command{
	Use:   "login [name]",
	Short: "Store RapidAPI credentials securely",
	Long: `Store a RapidAPI key and host under a profile name (default "default").

You will be prompted for any value not given as a flag. The key is read
without echo when a terminal is attached.`,
	Example: `  # Interactive login
  influencerfinder auth login

  # Non-interactive
  influencerfinder auth login --host instagram-scraper-api2.p.rapidapi.com --key "$KEY"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

// logoutCmd represents the auth logout command
var logoutCmd = &cobra.Command{
	Use:   "logout [name]",
	Short: "Remove stored credentials",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLogout,
}

// statusCmd represents the auth status command
var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"list"},
	Short:   "List stored credentials",
	Long:    `List stored credential profiles with their keys masked.`,
	Args:    cobra.NoArgs,
	RunE:    runStatus,
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(statusCmd)

	loginCmd.Flags().StringVar(&loginKey, "key", "", "RapidAPI key (X-RapidAPI-Key)")
	loginCmd.Flags().StringVar(&loginHost, "host", "", "RapidAPI host (X-RapidAPI-Host)")
	loginCmd.Flags().BoolVar(&skipGuide, "no-guide", false, "do not print the setup guide")
}

func runLogin(cmd *cobra.Command, args []string) error {
	manager, err := auth.NewManager("")
	if err != nil {
		return fmt.Errorf("failed to initialize credential manager: %w", err)
	}

	creds := &auth.Credentials{Name: auth.DefaultName, Key: loginKey, Host: loginHost}
	if len(args) > 0 {
		creds.Name = strings.TrimSpace(args[0])
	}

	out := cmd.OutOrStdout()
	if creds.Key == "" || creds.Host == "" {
		if !skipGuide {
			auth.ShowSetupGuide(out)
			fmt.Fprintln(out)
		}
		if err := promptCredentials(bufio.NewReader(cmd.InOrStdin()), out, creds); err != nil {
			return err
		}
	}

	if err := manager.Store(creds); err != nil {
		return err
	}
	ui.PrintSuccess(fmt.Sprintf("Credentials %q stored (key %s)", creds.Name, auth.MaskKey(creds.Key)))
	fmt.Fprintln(out, "Run searches against live data with --mode live or MODE=live.")
	return nil
}

// promptCredentials asks for whatever creds is missing. The key is read
// without echo when stdin is a terminal.
func promptCredentials(in *bufio.Reader, out io.Writer, creds *auth.Credentials) error {
	if creds.Host == "" {
		fmt.Fprint(out, "RapidAPI host: ")
		host, err := readLine(in)
		if err != nil {
			return fmt.Errorf("failed to read host: %w", err)
		}
		creds.Host = host
	}

	if creds.Key == "" {
		fmt.Fprint(out, "RapidAPI key: ")
		fd := int(os.Stdin.Fd())
		if term.IsTerminal(fd) {
			raw, err := term.ReadPassword(fd)
			fmt.Fprintln(out)
			if err != nil {
				return fmt.Errorf("failed to read key: %w", err)
			}
			creds.Key = strings.TrimSpace(string(raw))
		} else {
			key, err := readLine(in)
			if err != nil {
				return fmt.Errorf("failed to read key: %w", err)
			}
			creds.Key = key
		}
	}
	return auth.Validate(creds)
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	manager, err := auth.NewManager("")
	if err != nil {
		return fmt.Errorf("failed to initialize credential manager: %w", err)
	}

	name := auth.DefaultName
	if len(args) > 0 {
		name = args[0]
	}
	if err := manager.Delete(name); err != nil {
		return err
	}
	ui.PrintSuccess(fmt.Sprintf("Credentials %q removed", name))
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	manager, err := auth.NewManager("")
	if err != nil {
		return fmt.Errorf("failed to initialize credential manager: %w", err)
	}

	all, err := manager.List()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(all) == 0 {
		fmt.Fprintln(out, "No credentials stored. Run 'influencerfinder auth login' to add some.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tHOST\tKEY\tMODIFIED")
	for _, c := range all {
		c = auth.Sanitize(c)
		modified := "-"
		if !c.LastModified.IsZero() {
			modified = c.LastModified.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Name, c.Host, c.Key, modified)
	}
	return tw.Flush()
}
