package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cardroom/blackjack/blackjack"
	"github.com/cardroom/blackjack/game"
	"github.com/cardroom/blackjack/game/commands"
	"github.com/cardroom/blackjack/server/connection"
)

// CommandRouter routes incoming commands to the appropriate handler
type CommandRouter struct {
	lobby   *game.Lobby
	connMgr *connection.Manager
}

// NewCommandRouter creates a new command router
func NewCommandRouter(lobby *game.Lobby, connMgr *connection.Manager) *CommandRouter {
	return &CommandRouter{
		lobby:   lobby,
		connMgr: connMgr,
	}
}

// HandleCommand processes an incoming command message
func (r *CommandRouter) HandleCommand(client *connection.Client, message []byte) error {
	// First determine command type
	var baseCmd struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(message, &baseCmd); err != nil {
		return err
	}

	// Route to appropriate handler based on command type
	switch baseCmd.Name {
	case commands.Identify{}.Name():
		var cmd commands.Identify
		if err := json.Unmarshal(message, &cmd); err != nil {
			return err
		}
		return r.handleIdentify(client, cmd)

	case commands.JoinTable{}.Name():
		var cmd commands.JoinTable
		if err := json.Unmarshal(message, &cmd); err != nil {
			return err
		}
		return r.handleJoinTable(client, cmd)

	case commands.LeaveTable{}.Name():
		var cmd commands.LeaveTable
		if err := json.Unmarshal(message, &cmd); err != nil {
			return err
		}
		return r.handleLeaveTable(client, cmd)

	case commands.PlaceBet{}.Name():
		var cmd commands.PlaceBet
		if err := json.Unmarshal(message, &cmd); err != nil {
			return err
		}
		return r.handlePlaceBet(client, cmd)

	case commands.Deal{}.Name():
		var cmd commands.Deal
		if err := json.Unmarshal(message, &cmd); err != nil {
			return err
		}
		return r.handleDeal(client, cmd)

	case commands.Hit{}.Name():
		var cmd commands.Hit
		if err := json.Unmarshal(message, &cmd); err != nil {
			return err
		}
		return r.handleHit(client, cmd)

	case commands.Stand{}.Name():
		var cmd commands.Stand
		if err := json.Unmarshal(message, &cmd); err != nil {
			return err
		}
		return r.handleStand(client, cmd)

	case commands.Resolve{}.Name():
		var cmd commands.Resolve
		if err := json.Unmarshal(message, &cmd); err != nil {
			return err
		}
		return r.handleResolve(client, cmd)

	case commands.ResetSession{}.Name():
		var cmd commands.ResetSession
		if err := json.Unmarshal(message, &cmd); err != nil {
			return err
		}
		return r.handleResetSession(client, cmd)

	case commands.GetState{}.Name():
		var cmd commands.GetState
		if err := json.Unmarshal(message, &cmd); err != nil {
			return err
		}
		return r.handleGetState(client, cmd)

	default:
		return fmt.Errorf("unknown command: %s", baseCmd.Name)
	}
}

func (r *CommandRouter) handleIdentify(client *connection.Client, cmd commands.Identify) error {
	if cmd.PlayerID == "" {
		return errors.New("player ID is required")
	}
	r.connMgr.Identify(client.ID, cmd.PlayerID)
	return r.sendAck(client, cmd.Name())
}

func (r *CommandRouter) handleJoinTable(client *connection.Client, cmd commands.JoinTable) error {
	session, ok := r.lobby.GetSession(cmd.TableID)
	if !ok {
		return r.sendError(client, cmd.Name(), "table not found")
	}

	r.connMgr.AddTableToClient(client.ID, cmd.TableID)
	return r.sendState(client, session)
}

func (r *CommandRouter) handleLeaveTable(client *connection.Client, cmd commands.LeaveTable) error {
	r.connMgr.RemoveTableFromClient(client.ID, cmd.TableID)
	return r.sendAck(client, cmd.Name())
}

func (r *CommandRouter) handlePlaceBet(client *connection.Client, cmd commands.PlaceBet) error {
	session, ok := r.sessionFor(client, cmd.TableID)
	if !ok {
		return r.sendError(client, cmd.Name(), "table not found or not joined")
	}

	bet, err := betFromChipUnits(cmd.Chips)
	if err != nil {
		return r.sendError(client, cmd.Name(), err.Error())
	}

	if err := session.PlaceBet(cmd.Spot, bet); err != nil {
		return r.sendError(client, cmd.Name(), err.Error())
	}
	return r.sendAck(client, cmd.Name())
}

func (r *CommandRouter) handleDeal(client *connection.Client, cmd commands.Deal) error {
	session, ok := r.sessionFor(client, cmd.TableID)
	if !ok {
		return r.sendError(client, cmd.Name(), "table not found or not joined")
	}

	if _, _, err := session.StartRound(); err != nil {
		return r.sendError(client, cmd.Name(), err.Error())
	}
	return r.sendState(client, session)
}

func (r *CommandRouter) handleHit(client *connection.Client, cmd commands.Hit) error {
	session, ok := r.sessionFor(client, cmd.TableID)
	if !ok {
		return r.sendError(client, cmd.Name(), "table not found or not joined")
	}

	if _, err := session.Hit(cmd.Spot); err != nil {
		return r.sendError(client, cmd.Name(), err.Error())
	}
	return r.sendState(client, session)
}

func (r *CommandRouter) handleStand(client *connection.Client, cmd commands.Stand) error {
	session, ok := r.sessionFor(client, cmd.TableID)
	if !ok {
		return r.sendError(client, cmd.Name(), "table not found or not joined")
	}

	if _, err := session.PlayDealer(); err != nil {
		return r.sendError(client, cmd.Name(), err.Error())
	}
	return r.sendState(client, session)
}

func (r *CommandRouter) handleResolve(client *connection.Client, cmd commands.Resolve) error {
	session, ok := r.sessionFor(client, cmd.TableID)
	if !ok {
		return r.sendError(client, cmd.Name(), "table not found or not joined")
	}

	if _, err := session.ResolveRound(); err != nil {
		return r.sendError(client, cmd.Name(), err.Error())
	}
	return r.sendState(client, session)
}

func (r *CommandRouter) handleResetSession(client *connection.Client, cmd commands.ResetSession) error {
	session, ok := r.sessionFor(client, cmd.TableID)
	if !ok {
		return r.sendError(client, cmd.Name(), "table not found or not joined")
	}

	if err := session.Reset(); err != nil {
		return r.sendError(client, cmd.Name(), err.Error())
	}
	return r.sendState(client, session)
}

func (r *CommandRouter) handleGetState(client *connection.Client, cmd commands.GetState) error {
	session, ok := r.lobby.GetSession(cmd.TableID)
	if !ok {
		return r.sendError(client, cmd.Name(), "table not found")
	}
	return r.sendState(client, session)
}

func (r *CommandRouter) sessionFor(client *connection.Client, tableID string) (*game.Session, bool) {
	if !r.connMgr.IsClientAtTable(client.ID, tableID) {
		return nil, false
	}
	return r.lobby.GetSession(tableID)
}

func betFromChipUnits(units []int) (blackjack.Bet, error) {
	var bet blackjack.Bet
	for _, u := range units {
		switch chip := blackjack.Chip(u); chip {
		case blackjack.ChipOne, blackjack.ChipFive, blackjack.ChipTwentyFive, blackjack.ChipHundred:
			bet = bet.Add(blackjack.BetFrom(chip))
		default:
			return blackjack.Bet{}, fmt.Errorf("unknown chip denomination: %d", u)
		}
	}
	return bet, nil
}

type responseEnvelope struct {
	Name    string `json:"name"`
	Payload any    `json:"payload,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (r *CommandRouter) sendAck(client *connection.Client, name string) error {
	return r.send(client, responseEnvelope{Name: name + "_OK"})
}

func (r *CommandRouter) sendError(client *connection.Client, name, message string) error {
	return r.send(client, responseEnvelope{Name: name + "_FAILED", Error: message})
}

func (r *CommandRouter) sendState(client *connection.Client, session *game.Session) error {
	return r.send(client, responseEnvelope{Name: "TABLE_STATE", Payload: session.View()})
}

func (r *CommandRouter) send(client *connection.Client, envelope responseEnvelope) error {
	data, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	client.Send <- data
	return nil
}
