package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/studiowebux/lit/internal/logging"
	"github.com/studiowebux/lit/internal/profiles"
	"github.com/studiowebux/lit/internal/types"
)

// AddProfile stores a profile. Missing user name or email are prompted for.
func (a *App) AddProfile(name, userName, userEmail string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("profile name must not be empty: %w", profiles.ErrEmptyField)
	}

	var err error
	if strings.TrimSpace(userName) == "" {
		if userName, err = a.prompt("User name"); err != nil {
			return err
		}
	}
	if strings.TrimSpace(userEmail) == "" {
		if userEmail, err = a.prompt("User email"); err != nil {
			return err
		}
	}

	existed := a.Store.Has(name)
	if err := a.Store.Add(name, userName, userEmail); err != nil {
		return fmt.Errorf("failed to add profile %s: %w", name, err)
	}

	if existed {
		logging.Debugf("overwrote profile %s", name)
	}
	fmt.Fprintf(a.Out, "Profile '%s' added.\n", name)
	return nil
}

// SwitchProfile applies the profile at name. With no name on a terminal a
// picker is shown.
func (a *App) SwitchProfile(ctx context.Context, name string) error {
	if name == "" {
		if !a.Interactive {
			return fmt.Errorf("profile name is required: %w", ErrNotInteractive)
		}
		if a.Store.Len() == 0 {
			return fmt.Errorf("no profiles yet, add one with add-profile")
		}

		picked, err := a.pick("Switch to profile", a.Store.Listings())
		if err != nil {
			return err
		}
		if picked == "" {
			return fmt.Errorf("selection cancelled")
		}
		name = picked
	}

	if !a.Store.Has(name) {
		return notFound(name, a.Store.Names())
	}

	if _, err := a.Switcher.Switch(ctx, name, types.SourceCLI); err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "Switched to profile '%s'.\n", name)
	return nil
}

// UpdateProfile replaces the identity of an existing profile
func (a *App) UpdateProfile(name, userName, userEmail string) error {
	if !a.Store.Has(name) {
		return notFound(name, a.Store.Names())
	}
	if err := a.Store.Update(name, userName, userEmail); err != nil {
		return fmt.Errorf("failed to update profile %s: %w", name, err)
	}

	fmt.Fprintf(a.Out, "Profile '%s' updated.\n", name)
	return nil
}

// DeleteProfile removes a profile and clears the active marker if it pointed there
func (a *App) DeleteProfile(name string) error {
	if !a.Store.Has(name) {
		return notFound(name, a.Store.Names())
	}
	if err := a.Store.Remove(name); err != nil {
		return fmt.Errorf("failed to delete profile %s: %w", name, err)
	}

	fmt.Fprintf(a.Out, "Profile '%s' deleted.\n", name)
	return nil
}

// ListOptions configures ListProfiles
type ListOptions struct {
	Format string // text, json, yaml
	Query  string // JMESPath over the listing, json/yaml only
}

// ListProfiles prints every profile
func (a *App) ListProfiles(opts ListOptions) error {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	if err := ValidateFormat(opts.Format); err != nil {
		return err
	}
	if err := validateQuery(opts.Format, opts.Query); err != nil {
		return err
	}

	listings := a.Store.Listings()

	if opts.Format != FormatText {
		return a.printData(listings, opts.Format, opts.Query)
	}

	fmt.Fprintln(a.Out, "Profiles:")
	for _, p := range listings {
		marker := ""
		if p.Active {
			marker = " (active)"
		}
		fmt.Fprintf(a.Out, "Profile: %s%s\n", p.Name, marker)
		fmt.Fprintf(a.Out, "  User Name: %s\n", p.UserName)
		fmt.Fprintf(a.Out, "  User Email: %s\n", p.UserEmail)
	}
	return nil
}

// Current prints the active profile and, when available, warns if git
// was changed outside lit
func (a *App) Current(ctx context.Context) error {
	name := a.Store.Active()
	if name == "" {
		fmt.Fprintln(a.Out, "No active profile.")
		return nil
	}

	p, _ := a.Store.Get(name)
	fmt.Fprintf(a.Out, "%s (%s <%s>)\n", p.Name, p.UserName, p.UserEmail)

	if a.Git == nil {
		return nil
	}

	gitName, gitEmail, err := a.Git.Read(ctx)
	if err != nil {
		logging.Warnf("could not read git identity: %v", err)
		return nil
	}
	if gitName != p.UserName || gitEmail != p.UserEmail {
		fmt.Fprintf(a.Err, "Warning: git is configured as %s <%s>\n", gitName, gitEmail)
	}
	return nil
}
