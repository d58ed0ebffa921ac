package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/slack-go/slack"

	"github.com/standupbot/slack-standup-bot/internal/domain/contract"
	"github.com/standupbot/slack-standup-bot/internal/domain/entity"
	slackcmd "github.com/standupbot/slack-standup-bot/internal/domain/slack"
)

type SlackHandler struct {
	standupService contract.StandupService
	signingSecret  string
}

func New(standupService contract.StandupService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		standupService: standupService,
		signingSecret:  signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	// Handle command
	response := h.handleCommand(r, cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdCreate:
		return h.handleCreate(r, cmd, slashCmd)
	case slackcmd.CmdAdd:
		return h.handleAddUser(r, cmd, slashCmd)
	case slackcmd.CmdRemove:
		return h.handleRemoveUser(r, cmd, slashCmd)
	case slackcmd.CmdConfig:
		return h.handleConfig(r, cmd, slashCmd)
	case slackcmd.CmdRespond:
		return h.handleRespond(r, cmd, slashCmd)
	case slackcmd.CmdStatus:
		return h.handleStatus(slashCmd)
	case slackcmd.CmdNext:
		return h.handleNext(slashCmd)
	case slackcmd.CmdPause:
		return h.handlePause(r, slashCmd)
	case slackcmd.CmdResume:
		return h.handleResume(r, slashCmd)
	case slackcmd.CmdOOO:
		return h.handleOOO(r, cmd, slashCmd)
	case slackcmd.CmdHoliday:
		return h.handleHoliday(r, cmd, slashCmd)
	case slackcmd.CmdConflicts:
		return h.handleConflicts(cmd, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

// requireStandup resolves the channel's standup, returning an error message
// ready for the user when none exists.
func (h *SlackHandler) requireStandup(channelID string) (*entity.Standup, *slack.Msg) {
	standup, err := h.standupService.GetStandupByChannel(channelID)
	if err != nil {
		return nil, h.createErrorResponse("Error looking up the channel's standup")
	}
	if standup == nil {
		return nil, h.createErrorResponse("No standup in this channel yet. Use `/standup create` first.")
	}
	return standup, nil
}

// parseMention extracts the user id from a Slack mention like <@U12345>.
func parseMention(mention string) string {
	userID := strings.TrimSpace(mention)
	userID = strings.TrimPrefix(userID, "<@")
	userID = strings.TrimSuffix(userID, ">")
	if i := strings.IndexByte(userID, '|'); i >= 0 {
		userID = userID[:i]
	}
	return userID
}

func (h *SlackHandler) handleCreate(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	standup := &entity.Standup{
		SlackChannelID: slashCmd.ChannelID,
		SlackTeamID:    slashCmd.TeamID,
		CreatorID:      slashCmd.UserID,
		Participants:   []string{slashCmd.UserID},
	}
	if len(cmd.Args) > 0 {
		standup.Name = strings.Join(cmd.Args, " ")
	}

	if err := h.standupService.CreateStandup(r.Context(), standup); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error creating standup: %v", err))
	}

	next, _ := h.standupService.NextRun(standup.ID)
	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text: fmt.Sprintf("✅ Standup *%s* created! First prompt goes out %s. Add teammates with `/standup add @user`.",
			standup.Name, next),
	}
}

func (h *SlackHandler) handleAddUser(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please mention the user: `/standup add @user`")
	}

	standup, errMsg := h.requireStandup(slashCmd.ChannelID)
	if errMsg != nil {
		return errMsg
	}

	userID := parseMention(cmd.Args[0])
	if err := h.standupService.AddParticipant(r.Context(), standup.ID, userID); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error adding participant: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ <@%s> joined *%s*!", userID, standup.Name),
	}
}

func (h *SlackHandler) handleRemoveUser(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please mention the user: `/standup remove @user`")
	}

	standup, errMsg := h.requireStandup(slashCmd.ChannelID)
	if errMsg != nil {
		return errMsg
	}

	userID := parseMention(cmd.Args[0])
	if err := h.standupService.RemoveParticipant(r.Context(), standup.ID, userID); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error removing participant: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ <@%s> left *%s*.", userID, standup.Name),
	}
}

func (h *SlackHandler) handleConfig(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Use: `/standup config time HH:MM`, `/standup config days weekdays`, ...")
	}

	standup, errMsg := h.requireStandup(slashCmd.ChannelID)
	if errMsg != nil {
		return errMsg
	}

	if cmd.Args[0] == "show" {
		return h.configSummary(standup)
	}

	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Invalid format. Use: `/standup config <option> <value>`")
	}

	configType := cmd.Args[0]
	configValue := strings.Join(cmd.Args[1:], " ")

	if err := h.standupService.UpdateConfig(r.Context(), standup.ID, configType, configValue); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error updating configuration: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Configuration updated: %s = %s", configType, configValue),
	}
}

func (h *SlackHandler) configSummary(standup *entity.Standup) *slack.Msg {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n", standup.Name)
	fmt.Fprintf(&b, "• Time: %s (%s)\n", standup.ScheduleTime, standup.Timezone)
	fmt.Fprintf(&b, "• Days: %s\n", standup.Days)
	fmt.Fprintf(&b, "• Holiday country: %s (skip holidays: %t)\n", standup.HolidayCountry, standup.SkipHolidays)
	fmt.Fprintf(&b, "• Participants: %d", len(standup.Participants))

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         b.String(),
	}
}

func (h *SlackHandler) handleRespond(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please include your update: `/standup respond <your update>`")
	}

	standup, errMsg := h.requireStandup(slashCmd.ChannelID)
	if errMsg != nil {
		return errMsg
	}

	content := strings.Join(cmd.Args, " ")
	if err := h.standupService.RecordResponse(r.Context(), standup.ID, slashCmd.UserID, content); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error recording your update: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "✅ Your update is in. Thanks!",
	}
}

func (h *SlackHandler) handleStatus(slashCmd *slack.SlashCommand) *slack.Msg {
	standup, errMsg := h.requireStandup(slashCmd.ChannelID)
	if errMsg != nil {
		return errMsg
	}

	loc := time.UTC
	if l, err := time.LoadLocation(standup.Timezone); err == nil {
		loc = l
	}
	today := time.Now().In(loc).Format("2006-01-02")

	responses, err := h.standupService.GetResponses(standup.ID, today)
	if err != nil {
		return h.createErrorResponse("Error loading today's responses")
	}

	responded := make(map[string]bool, len(responses))
	for _, resp := range responses {
		responded[resp.SlackUserID] = true
	}

	var b strings.Builder
	state := "active"
	if !standup.IsActive {
		state = "paused"
	}
	fmt.Fprintf(&b, "*%s* (%s) — %s\n", standup.Name, state, today)
	for _, userID := range standup.Participants {
		mark := "⏳"
		if responded[userID] {
			mark = "✅"
		}
		fmt.Fprintf(&b, "%s <@%s>\n", mark, userID)
	}
	fmt.Fprintf(&b, "\n%d of %d responses in.", len(responded), len(standup.Participants))

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         b.String(),
	}
}

func (h *SlackHandler) handleNext(slashCmd *slack.SlashCommand) *slack.Msg {
	standup, errMsg := h.requireStandup(slashCmd.ChannelID)
	if errMsg != nil {
		return errMsg
	}

	next, ok := h.standupService.NextRun(standup.ID)
	if !ok {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No standup is scheduled. It may be paused or its schedule has ended.",
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("📅 Next standup: %s", next),
	}
}

func (h *SlackHandler) handlePause(r *http.Request, slashCmd *slack.SlashCommand) *slack.Msg {
	standup, errMsg := h.requireStandup(slashCmd.ChannelID)
	if errMsg != nil {
		return errMsg
	}

	if err := h.standupService.Deactivate(r.Context(), standup.ID); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error pausing standup: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("⏸️ *%s* is paused. Resume with `/standup resume`.", standup.Name),
	}
}

func (h *SlackHandler) handleResume(r *http.Request, slashCmd *slack.SlashCommand) *slack.Msg {
	standup, errMsg := h.requireStandup(slashCmd.ChannelID)
	if errMsg != nil {
		return errMsg
	}

	if err := h.standupService.Activate(r.Context(), standup.ID); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error resuming standup: %v", err))
	}

	next, _ := h.standupService.NextRun(standup.ID)
	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("▶️ *%s* is back on. Next prompt: %s", standup.Name, next),
	}
}

func (h *SlackHandler) handleOOO(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 3 {
		return h.createErrorResponse("Use: `/standup ooo add YYYY-MM-DD YYYY-MM-DD [reason]` or `/standup ooo remove YYYY-MM-DD YYYY-MM-DD`")
	}

	action, startDate, endDate := cmd.Args[0], cmd.Args[1], cmd.Args[2]

	switch action {
	case "add":
		reason := ""
		if len(cmd.Args) > 3 {
			reason = strings.Join(cmd.Args[3:], " ")
		}
		period, err := h.standupService.AddUserOOO(r.Context(), slashCmd.UserID, startDate, endDate, reason)
		if err != nil {
			return h.createErrorResponse(fmt.Sprintf("Error adding out-of-office period: %v", err))
		}
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("🏖️ You're marked out of office %s to %s.", period.StartDate, period.EndDate),
		}
	case "remove", "rm":
		if err := h.standupService.RemoveUserOOO(r.Context(), slashCmd.UserID, startDate, endDate); err != nil {
			return h.createErrorResponse(fmt.Sprintf("Error removing out-of-office period: %v", err))
		}
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("✅ Out-of-office period %s to %s removed.", startDate, endDate),
		}
	default:
		return h.createErrorResponse("Use `/standup ooo add` or `/standup ooo remove`")
	}
}

func (h *SlackHandler) handleHoliday(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Use: `/standup holiday YYYY-MM-DD <name>`")
	}

	date := cmd.Args[0]
	name := strings.Join(cmd.Args[1:], " ")

	if err := h.standupService.AddCustomHoliday(r.Context(), date, name); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error adding holiday: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("🎉 Custom holiday added: %s (%s)", name, date),
	}
}

func (h *SlackHandler) handleConflicts(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	standup, errMsg := h.requireStandup(slashCmd.ChannelID)
	if errMsg != nil {
		return errMsg
	}

	startDate := time.Now().UTC().Format("2006-01-02")
	endDate := ""
	if len(cmd.Args) > 0 {
		startDate = cmd.Args[0]
	}
	if len(cmd.Args) > 1 {
		endDate = cmd.Args[1]
	}

	report, err := h.standupService.CheckScheduleConflicts(standup.ID, startDate, endDate)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error checking conflicts: %v", err))
	}

	if len(report.Conflicts) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "✅ No schedule conflicts found.",
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*%d upcoming conflict(s):*\n", len(report.Conflicts))
	for _, c := range report.Conflicts {
		switch c.Type {
		case entity.ConflictOOO:
			mentions := make([]string, len(c.Users))
			for i, userID := range c.Users {
				mentions[i] = fmt.Sprintf("<@%s>", userID)
			}
			fmt.Fprintf(&b, "• %s — out of office: %s\n", c.Date, strings.Join(mentions, ", "))
		default:
			fmt.Fprintf(&b, "• %s — %s\n", c.Date, c.Details)
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         b.String(),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
