package cli

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/modkit-dev/modkit/internal/branding"
	"github.com/modkit-dev/modkit/internal/config"
	"github.com/modkit-dev/modkit/internal/language"
	"github.com/modkit-dev/modkit/internal/project"
)

var (
	newModID            string
	newName             string
	newMinecraftVersion string
	newKotlin           bool
	newMainClass        string
)

func init() {
	newCmd.Flags().StringVar(&newModID, "id", "", "Mod id (default: base name of <path>)")
	newCmd.Flags().StringVar(&newName, "name", "", "Display name (default: derived from the mod id)")
	newCmd.Flags().StringVar(&newMinecraftVersion, "minecraft-version", "", "Minecraft version as <major>.<minor> (default: latest template)")
	newCmd.Flags().BoolVarP(&newKotlin, "kotlin", "k", false, "Use the Kotlin template")
	newCmd.Flags().StringVarP(&newMainClass, "main", "m", "", "Fully qualified entrypoint class (default: "+branding.DefaultMainClass()+")")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <path>",
	Short: "Create a new Fabric mod project",
	Long: `Create a new Fabric mod project at <path> from the example mod template.

Examples:
  modkit new my-mod
  modkit new ./mods/cool-mod --name "Cool Mod" --main com.example.coolmod.CoolMod
  modkit new my-mod --kotlin --minecraft-version 1.19`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang := language.Java
		if newKotlin {
			lang = language.Kotlin
		} else if !cmd.Flags().Changed("kotlin") {
			if def, err := language.Parse(config.Get("new.language")); err == nil {
				lang = def
			}
		}
		version := newMinecraftVersion
		if version == "" {
			version = config.Get("new.minecraft_version")
		}

		result, err := project.Create(project.Options{
			Path:             args[0],
			ModID:            newModID,
			Name:             newName,
			MinecraftVersion: version,
			Language:         lang,
			MainClass:        newMainClass,
			Runner:           gitRunner,
			Out:              cmd.OutOrStdout(),
			Logger:           slog.Default(),
		})
		if err != nil {
			return err
		}

		printResult(cmd.OutOrStdout(), args[0], result)
		return nil
	},
}

func printResult(w io.Writer, path string, result *project.Result) {
	fmt.Fprintf(w, "\nCreated %s (%s) at %s\n", result.Name, result.ModID, result.Path)
	fmt.Fprintf(w, "  language:   %s\n", result.Language)
	fmt.Fprintf(w, "  entrypoint: %s\n", result.MainClass)
	if result.MinecraftVersion != "" {
		fmt.Fprintf(w, "  minecraft:  %s\n", result.MinecraftVersion)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}

	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintf(w, "  1. cd %s\n", filepath.Clean(path))
	fmt.Fprintln(w, "  2. Run './gradlew genSources' to decompile Minecraft for your IDE")
	fmt.Fprintln(w, "  3. Run './gradlew runClient' to start the game with your mod")
}
