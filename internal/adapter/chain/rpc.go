package chain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"reward-indexer/pkg/apperror"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/rpc"
)

// JSON-RPC error codes that no amount of reconnecting will fix.
const (
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

// rpcRequest and rpcMessage frame the eth_subscribe exchange on the
// WebSocket transport. HTTP calls go through rpc.Client.
type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      uint64        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

// rpcMessage is any inbound frame: a response (ID set) or a subscription
// notification (Method set).
type rpcMessage struct {
	JSONRPC string              `json:"jsonrpc"`
	ID      *uint64             `json:"id,omitempty"`
	Method  string              `json:"method,omitempty"`
	Params  *subscriptionParams `json:"params,omitempty"`
	Result  json.RawMessage     `json:"result,omitempty"`
	Error   *RPCError           `json:"error,omitempty"`
}

type subscriptionParams struct {
	Subscription string          `json:"subscription"`
	Result       json.RawMessage `json:"result"`
}

// RPCError is an error object returned by the provider over WebSocket. It
// satisfies rpc.Error so both transports classify errors the same way.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

func (e *RPCError) ErrorCode() int { return e.Code }

var _ rpc.Error = (*RPCError)(nil)

// isFatalRPC reports whether the provider rejected the request itself.
func isFatalRPC(err error) bool {
	var rpcErr rpc.Error
	if !errors.As(err, &rpcErr) {
		return false
	}
	code := rpcErr.ErrorCode()
	return code == codeMethodNotFound || code == codeInvalidParams
}

func isFilterNotFound(err error) bool {
	var rpcErr rpc.Error
	return errors.As(err, &rpcErr) && strings.Contains(strings.ToLower(rpcErr.Error()), "filter not found")
}

// subscribeError converts a failure to establish the subscription into a
// subscription AppError.
func subscribeError(err error) error {
	if apperror.Is(err, apperror.KindSubscription) {
		return err
	}
	return apperror.ErrSubscription("subscribing to logs", err)
}

// filterArg renders a FilterQuery as the JSON object accepted by
// eth_subscribe("logs") and eth_newFilter.
func filterArg(q ethereum.FilterQuery, fromBlock string) map[string]interface{} {
	arg := make(map[string]interface{})
	if len(q.Addresses) > 0 {
		arg["address"] = q.Addresses
	}
	if len(q.Topics) > 0 {
		arg["topics"] = q.Topics
	}
	if fromBlock != "" {
		arg["fromBlock"] = fromBlock
	}
	return arg
}
