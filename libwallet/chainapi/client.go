package chainapi

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"

	"code.tatchcapital.com/group/tatchwallet/libwallet/utils"
	"decred.org/dcrwallet/v2/errors"
)

type (
	// Client talks to a node's JSON-RPC endpoint and caches the chain id it
	// reports. Until the first successful Refresh, ChainID reports
	// utils.DefaultChainID.
	Client struct {
		nodeURL string
		http    *utils.Client
		reqID   uint64

		mtx     sync.RWMutex
		chainID utils.ChainID
	}

	rpcRequest struct {
		JSONRPC string        `json:"jsonrpc"`
		ID      uint64        `json:"id"`
		Method  string        `json:"method"`
		Params  []interface{} `json:"params"`
	}

	rpcError struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}

	rpcResponse struct {
		ID     uint64          `json:"id"`
		Result json.RawMessage `json:"result"`
		Error  *rpcError       `json:"error"`
	}
)

// NewClient returns a client for the node at nodeURL. No request is made
// until Refresh is called.
func NewClient(nodeURL string) *Client {
	return &Client{
		nodeURL: nodeURL,
		http:    utils.NewClient(),
	}
}

// ChainID returns the cached chain id, or utils.DefaultChainID when the node
// has not been queried yet.
func (c *Client) ChainID() string {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	if c.chainID == "" {
		return string(utils.DefaultChainID)
	}
	return string(c.chainID)
}

// Connected reports whether a chain id was ever fetched from the node.
func (c *Client) Connected() bool {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	return c.chainID != ""
}

// Refresh fetches the chain id from the node and caches it. On failure the
// previously cached value is kept.
func (c *Client) Refresh(ctx context.Context) (utils.ChainID, error) {
	const op errors.Op = "chainapi.Refresh"

	var id string
	if err := c.call(ctx, "get_chain_id", &id); err != nil {
		log.Warnf("unable to fetch chain id from %s: %v", c.nodeURL, err)
		return "", errors.E(op, errors.Errorf("%s: %v", utils.ErrNotConnected, err))
	}
	if id == "" {
		return "", errors.E(op, errors.Protocol, errors.New(utils.ErrEmptyChainID))
	}

	c.mtx.Lock()
	c.chainID = utils.ChainID(id)
	c.mtx.Unlock()

	log.Debugf("node %s reports chain id %s", c.nodeURL, id)
	return utils.ChainID(id), nil
}

func (c *Client) call(ctx context.Context, method string, result interface{}, params ...interface{}) error {
	if params == nil {
		params = []interface{}{}
	}
	payload, err := json.Marshal(&rpcRequest{
		JSONRPC: "2.0",
		ID:      atomic.AddUint64(&c.reqID, 1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return errors.E(errors.Encoding, err)
	}

	req := &utils.ReqConfig{
		Method:   http.MethodPost,
		HTTPURL:  c.nodeURL,
		Payload:  payload,
		IsActive: true,
	}

	var resp rpcResponse
	if err := c.http.Do(ctx, req, &resp); err != nil {
		return err
	}
	if resp.Error != nil {
		return errors.E(errors.Protocol, errors.Errorf("%s: %d %s", method, resp.Error.Code, resp.Error.Message))
	}
	if err := json.Unmarshal(resp.Result, result); err != nil {
		return errors.E(errors.Encoding, err)
	}
	return nil
}

// Static is a fixed chain id source, used in offline mode and tests.
type Static string

// ChainID returns the fixed chain id.
func (s Static) ChainID() string {
	return string(s)
}
