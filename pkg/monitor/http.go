package monitor

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/chainsafe/bridge-monitor/pkg/app/errors"
	apphttp "github.com/chainsafe/bridge-monitor/pkg/app/http"
	"github.com/chainsafe/bridge-monitor/pkg/config"
	"github.com/chainsafe/bridge-monitor/pkg/reconciler"
	"github.com/chainsafe/bridge-monitor/pkg/report"
	"github.com/chainsafe/bridge-monitor/pkg/transfer"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Service is the read side of the engine used by the HTTP API.
type Service interface {
	IsReady() bool
	Bridges() []string
	Snapshot(bridge string) (*Snapshot, bool)
	Status() []BridgeStatus
	InspectTx(ctx context.Context, bridge, sideName string, txHash common.Hash) ([]reconciler.TxStatus, error)
}

// HTTP serves snapshots and live tx inspection.
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the monitor API on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{service: service, logger: logger}

	r.Get("/transfers", apphttp.HandleError(logger, h.listTransfers))
	r.Get("/transfers/{transaction_id}", apphttp.HandleError(logger, h.getTransfer))
	r.Get("/tx-status/{deposit_chain}/{tx_hash}", apphttp.HandleError(logger, h.txStatus))
	r.Get("/status", apphttp.HandleError(logger, h.status))
}

type snapshotInfo struct {
	Bridge     string    `json:"bridge"`
	SnapshotID string    `json:"snapshot_id"`
	FinishedAt time.Time `json:"finished_at"`
}

type transfersResponse struct {
	Snapshots []snapshotInfo `json:"snapshots"`
	Count     int            `json:"count"`
	Transfers []report.Row   `json:"transfers"`
}

type transferResponse struct {
	Bridge     string     `json:"bridge"`
	SnapshotID string     `json:"snapshot_id"`
	Transfer   report.Row `json:"transfer"`
}

type idStatusView struct {
	Variant   string `json:"variant"`
	ID        string `json:"transaction_id"`
	Votes     uint64 `json:"num_votes"`
	Processed bool   `json:"was_processed"`
}

type txStatusView struct {
	FromChain   string         `json:"from_chain"`
	ToChain     string         `json:"to_chain"`
	BlockNumber uint64         `json:"event_block_number"`
	LogIndex    uint           `json:"event_log_index"`
	Token       string         `json:"token_address"`
	Symbol      string         `json:"token_symbol"`
	Receiver    string         `json:"receiver_address"`
	Amount      string         `json:"amount_wei"`
	IDs         []idStatusView `json:"ids"`
}

type statusResponse struct {
	Ready   bool           `json:"ready"`
	Bridges []BridgeStatus `json:"bridges"`
}

func (h *HTTP) listTransfers(w http.ResponseWriter, r *http.Request) error {
	snapshots, err := h.snapshots(r.URL.Query().Get("bridge"))
	if err != nil {
		return err
	}

	q := r.URL.Query()
	unprocessed := false
	if v := q.Get("unprocessed"); v != "" {
		if unprocessed, err = strconv.ParseBool(v); err != nil {
			return apperrors.BadRequestError(err, "unprocessed must be a boolean")
		}
	}
	statuses, err := parseStatuses(q["status"])
	if err != nil {
		return err
	}

	resp := transfersResponse{Snapshots: make([]snapshotInfo, 0, len(snapshots)), Transfers: []report.Row{}}
	for _, s := range snapshots {
		resp.Snapshots = append(resp.Snapshots, info(s))
		records := s.Result.Records()
		if unprocessed {
			records = report.FilterUnprocessed(records)
		}
		for _, rec := range report.FilterStatus(records, statuses...) {
			resp.Transfers = append(resp.Transfers, report.ToRow(rec))
		}
	}
	resp.Count = len(resp.Transfers)

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) getTransfer(w http.ResponseWriter, r *http.Request) error {
	raw := chi.URLParam(r, "transaction_id")
	id, err := transfer.ParseID(raw)
	if err != nil {
		return apperrors.BadRequestError(err, "invalid transaction id")
	}
	snapshots, err := h.snapshots(r.URL.Query().Get("bridge"))
	if err != nil {
		return err
	}

	for _, s := range snapshots {
		for _, rec := range s.Result.Records() {
			if rec.ID == id || (rec.LegacyID != nil && *rec.LegacyID == id) {
				apphttp.WriteJSON(w, http.StatusOK, transferResponse{
					Bridge:     s.Result.Bridge,
					SnapshotID: s.ID.String(),
					Transfer:   report.ToRow(rec),
				})
				return nil
			}
		}
	}
	return apperrors.ResourceNotFoundError(nil, "transfer not found")
}

func (h *HTTP) txStatus(w http.ResponseWriter, r *http.Request) error {
	sideName := chi.URLParam(r, "deposit_chain")
	txHash, err := transfer.ParseTxHash(chi.URLParam(r, "tx_hash"))
	if err != nil {
		return apperrors.BadRequestError(err, err.Error())
	}

	bridge := r.URL.Query().Get("bridge")
	if bridge == "" {
		names := h.service.Bridges()
		if len(names) != 1 {
			return apperrors.BadRequestError(nil, "bridge query parameter is required")
		}
		bridge = names[0]
	}

	statuses, err := h.service.InspectTx(r.Context(), bridge, sideName, txHash)
	switch {
	case errors.Is(err, ErrUnknownBridge):
		return apperrors.ResourceNotFoundError(err, "unknown bridge")
	case errors.Is(err, config.ErrUnknownSide):
		return apperrors.BadRequestError(err, "deposit chain must be rsk or other")
	case err != nil:
		return apperrors.GeneralError(err)
	}

	views := make([]txStatusView, 0, len(statuses))
	for _, st := range statuses {
		views = append(views, txStatusView{
			FromChain:   st.FromChain,
			ToChain:     st.ToChain,
			BlockNumber: st.Deposit.BlockNumber,
			LogIndex:    st.Deposit.LogIndex,
			Token:       hexutil.Encode(st.Deposit.Token.Bytes()),
			Symbol:      st.Deposit.Symbol,
			Receiver:    hexutil.Encode(st.Deposit.Receiver.Bytes()),
			Amount:      amountString(st.Deposit),
			IDs:         []idStatusView{idView(st.Current), idView(st.Legacy)},
		})
	}
	apphttp.WriteJSON(w, http.StatusOK, map[string]any{
		"bridge":       bridge,
		"tx_hash":      txHash.Hex(),
		"deposits":     views,
		"deposit_side": strings.ToLower(sideName),
	})
	return nil
}

func (h *HTTP) status(w http.ResponseWriter, _ *http.Request) error {
	apphttp.WriteJSON(w, http.StatusOK, statusResponse{
		Ready:   h.service.IsReady(),
		Bridges: h.service.Status(),
	})
	return nil
}

// snapshots returns the latest snapshot of bridge, or of every bridge when empty.
func (h *HTTP) snapshots(bridge string) ([]*Snapshot, error) {
	names := h.service.Bridges()
	if bridge != "" {
		found := false
		for _, n := range names {
			if n == bridge {
				found = true
				break
			}
		}
		if !found {
			return nil, apperrors.ResourceNotFoundError(nil, "unknown bridge")
		}
		names = []string{bridge}
	}

	snapshots := make([]*Snapshot, 0, len(names))
	for _, n := range names {
		s, ok := h.service.Snapshot(n)
		if !ok {
			return nil, apperrors.UnavailableError(nil, "reconciliation of "+n+" has not completed yet")
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, nil
}

func parseStatuses(values []string) ([]transfer.Status, error) {
	var statuses []transfer.Status
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			st := transfer.Status(strings.ToLower(part))
			if !knownStatus(st) {
				return nil, apperrors.BadRequestError(nil, "unknown status "+part)
			}
			statuses = append(statuses, st)
		}
	}
	return statuses, nil
}

func knownStatus(st transfer.Status) bool {
	for _, s := range transfer.Statuses {
		if s == st {
			return true
		}
	}
	return false
}

func info(s *Snapshot) snapshotInfo {
	return snapshotInfo{Bridge: s.Result.Bridge, SnapshotID: s.ID.String(), FinishedAt: s.Result.FinishedAt}
}

func idView(st reconciler.IDStatus) idStatusView {
	return idStatusView{Variant: st.Variant.String(), ID: st.ID.Hex(), Votes: st.Votes, Processed: st.Processed}
}

func amountString(d transfer.DepositEvent) string {
	if d.Amount == nil {
		return "0"
	}
	return d.Amount.String()
}
