package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdCreate    CommandType = "create"
	CmdAdd       CommandType = "add"
	CmdRemove    CommandType = "remove"
	CmdConfig    CommandType = "config"
	CmdRespond   CommandType = "respond"
	CmdStatus    CommandType = "status"
	CmdNext      CommandType = "next"
	CmdPause     CommandType = "pause"
	CmdResume    CommandType = "resume"
	CmdOOO       CommandType = "ooo"
	CmdHoliday   CommandType = "holiday"
	CmdConflicts CommandType = "conflicts"
	CmdHelp      CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	switch parts[0] {
	case "create", "start":
		cmd.Type = CmdCreate
	case "add":
		cmd.Type = CmdAdd
	case "remove", "rm":
		cmd.Type = CmdRemove
	case "config":
		cmd.Type = CmdConfig
	case "respond", "reply":
		cmd.Type = CmdRespond
	case "status":
		cmd.Type = CmdStatus
	case "next":
		cmd.Type = CmdNext
	case "pause":
		cmd.Type = CmdPause
	case "resume":
		cmd.Type = CmdResume
	case "ooo", "vacation":
		cmd.Type = CmdOOO
	case "holiday":
		cmd.Type = CmdHoliday
	case "conflicts":
		cmd.Type = CmdConflicts
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

*Setup:*
• ` + "`/standup create`" + ` - Create a standup for this channel
• ` + "`/standup add @user`" + ` - Add a participant
• ` + "`/standup remove @user`" + ` - Remove a participant

*Configuration:*
• ` + "`/standup config time HH:MM`" + ` - Set prompt time (ex: 09:30)
• ` + "`/standup config days weekdays`" + ` - Set active days (weekdays, everyday, or mon,wed,fri)
• ` + "`/standup config timezone America/New_York`" + ` - Set the timezone
• ` + "`/standup config country Germany`" + ` - Set the holiday country
• ` + "`/standup config skipholidays true`" + ` - Skip standups on holidays
• ` + "`/standup config name NAME`" + ` - Rename the standup

*Daily flow:*
• ` + "`/standup respond <your update>`" + ` - Submit today's update
• ` + "`/standup status`" + ` - Show who has responded today
• ` + "`/standup next`" + ` - Show the next scheduled standup

*Calendar:*
• ` + "`/standup ooo add 2025-07-01 2025-07-05 [reason]`" + ` - Mark yourself out of office
• ` + "`/standup ooo remove 2025-07-01 2025-07-05`" + ` - Remove an out-of-office period
• ` + "`/standup holiday 2025-12-24 Company holiday`" + ` - Add a custom holiday
• ` + "`/standup conflicts [start] [end]`" + ` - Check upcoming schedule conflicts

*Control:*
• ` + "`/standup pause`" + ` - Pause this standup
• ` + "`/standup resume`" + ` - Resume this standup`
}
