package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/studysync/pkg/app"
	"tableflip.dev/studysync/pkg/commands/options"
	"tableflip.dev/studysync/pkg/notify"
	"tableflip.dev/studysync/pkg/store"
)

var (
	oo     = &base.OutputOptions{}
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "studysync",
		Short: base.Wrap80("Student schedules, reminders, and study timers on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addLogin(topLevel)
	addSignup(topLevel)
	addSocial(topLevel)
	addLogout(topLevel)
	addWhoAmI(topLevel)
	addProfile(topLevel)
	addSchedule(topLevel)
	addReminder(topLevel)
	addToday(topLevel)
	addStats(topLevel)
	addCalendar(topLevel)
	addTimer(topLevel)
	addVersion(topLevel)
}

// newService loads persistence and wraps it with a terminal notifier.
func newService() (*app.Service, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return app.New(p, notify.CLI{}), nil
}
