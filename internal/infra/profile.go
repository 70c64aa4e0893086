package infra

import (
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/ini.v1"
)

var roleARNAccount = regexp.MustCompile(`^arn:aws[a-z-]*:iam::(\d{12}):`)

// FindProfileByAccountID returns the shared config profile that targets accountID.
// AWS_PROFILE and AWS_DEFAULT_PROFILE win when they match; otherwise the
// alphabetically first matching profile is returned. Returns "" when nothing matches.
func FindProfileByAccountID(accountID string) string {
	return findProfileByAccountID(accountID)
}

func findProfileByAccountID(accountID string) string {
	profiles := parseAWSConfigProfiles()
	if len(profiles) == 0 {
		return ""
	}

	for _, env := range []string{"AWS_PROFILE", "AWS_DEFAULT_PROFILE"} {
		if name := os.Getenv(env); name != "" && profiles[name] == accountID {
			return name
		}
	}

	names := lo.Keys(profiles)
	slices.Sort(names)
	for _, name := range names {
		if profiles[name] == accountID {
			return name
		}
	}

	return ""
}

// parseAWSConfigProfiles maps profile names to the account ID each one targets.
// sso_account_id takes precedence over the account embedded in role_arn.
func parseAWSConfigProfiles() map[string]string {
	cfg, err := ini.Load(getAWSConfigPath())
	if err != nil {
		return nil
	}

	profiles := make(map[string]string)
	for _, section := range cfg.Sections() {
		name := profileName(section.Name())
		if name == "" {
			continue
		}
		if section.HasKey("sso_account_id") {
			if id := section.Key("sso_account_id").String(); id != "" {
				profiles[name] = id
				continue
			}
		}
		if section.HasKey("role_arn") {
			if m := roleARNAccount.FindStringSubmatch(section.Key("role_arn").String()); m != nil {
				profiles[name] = m[1]
			}
		}
	}

	return profiles
}

func profileName(section string) string {
	if strings.EqualFold(section, "default") {
		return "default"
	}
	if name, ok := strings.CutPrefix(section, "profile "); ok {
		return strings.TrimSpace(name)
	}
	return ""
}

func getAWSConfigPath() string {
	if path := os.Getenv("AWS_CONFIG_FILE"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".aws", "config")
}
