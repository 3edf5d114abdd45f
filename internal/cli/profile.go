package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dentalref/dentalref/internal/config"
	"github.com/dentalref/dentalref/internal/database"
	"github.com/dentalref/dentalref/internal/output"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage saved criteria profiles",
	Long: `Criteria profiles capture a recurring clinical scenario so it can be
reused with 'dentalref recommend --from-profile <name>'.

Examples:
  dentalref profile save molar-case --procedure "Class II restoration" --location posterior --stress high
  dentalref profile list
  dentalref profile delete molar-case`,
}

var profileSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the given criteria under a name",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileSave,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles",
	RunE:  runProfileList,
}

var profileShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one saved profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileShow,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileDelete,
}

var profileCriteria criteriaFlags

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSaveCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileDeleteCmd)

	profileCriteria.register(profileSaveCmd)
}

func runProfileSave(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := openProfileDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	criteria, err := profileCriteria.profile()
	if err != nil {
		return err
	}

	saved := &database.SavedProfile{
		Name:    args[0],
		Profile: *criteria,
	}
	if err := db.SaveProfile(ctx, saved); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	fmt.Printf("Saved profile %q\n", saved.Name)
	return nil
}

func runProfileList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := openProfileDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	profiles, err := db.ListProfiles(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}
	return output.Output(outputFmt, profiles)
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := openProfileDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	saved, err := db.GetProfileByName(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	if saved == nil {
		return fmt.Errorf("profile not found: %s", args[0])
	}
	return output.JSON(saved)
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := openProfileDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.DeleteProfile(cmd.Context(), args[0]); err != nil {
		return err
	}

	fmt.Printf("Deleted profile %q\n", args[0])
	return nil
}
