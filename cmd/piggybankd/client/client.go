package client

import (
	"sync"
	"time"

	"github.com/iov-one/piggybank/x/piggybank"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
	"github.com/pkg/errors"
	"github.com/tendermint/tendermint/rpc/client"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
)

// Client is an interface to interact with a piggybank node.
type Client interface {
	GetUser(addr weave.Address) (*UserResponse, error)
	GetWallet(addr weave.Address) (*WalletResponse, error)
	GetVault(id []byte) (*VaultResponse, error)
	GetVaultBalance(id []byte) (*coin.Coin, error)
	BroadcastTx(tx weave.Tx) BroadcastTxResponse
	AbciQuery(path string, data []byte) (AbciResponse, error)
	ChainID() (string, error)
}

// PiggybankClient is a tendermint client wrapped to provide simple access to
// the data structures used by the piggybank application.
type PiggybankClient struct {
	conn client.Client
}

var _ Client = (*PiggybankClient)(nil)

// NewClient wraps a PiggybankClient around an existing tendermint client
// connection.
func NewClient(conn client.Client) *PiggybankClient {
	return &PiggybankClient{conn: conn}
}

// NewHTTPConnection takes a URL and sends all requests to the remote node.
func NewHTTPConnection(remote string) client.Client {
	return client.NewHTTP(remote, "/websocket")
}

// ChainID returns the chain ID declared in the genesis of the node.
func (c *PiggybankClient) ChainID() (string, error) {
	gen, err := c.conn.Genesis()
	if err != nil {
		return "", err
	}
	return gen.Genesis.ChainID, nil
}

// Height returns the latest block height known to the node.
func (c *PiggybankClient) Height() (int64, error) {
	status, err := c.conn.Status()
	if err != nil {
		return -1, err
	}
	return status.SyncInfo.LatestBlockHeight, nil
}

// BlockTime returns the time of the latest block known to the node. This is
// the clock that vault locks are compared with.
func (c *PiggybankClient) BlockTime() (time.Time, error) {
	status, err := c.conn.Status()
	if err != nil {
		return time.Time{}, err
	}
	return status.SyncInfo.LatestBlockTime, nil
}

// AbciResponse contains a query result: a (possibly empty) list of key-value
// pairs, and the height at which it queried.
type AbciResponse struct {
	Models []weave.Model
	Height int64
}

// AbciQuery calls abci query on tendermint rpc, verifies if it is an error
// or empty, and if there is data pulls out the ResultSets from keys and values
// into a useful AbciResponse struct.
func (c *PiggybankClient) AbciQuery(path string, data []byte) (AbciResponse, error) {
	var out AbciResponse

	q, err := c.conn.ABCIQuery(path, data)
	if err != nil {
		return out, err
	}
	resp := q.Response
	if resp.IsErr() {
		return out, errors.Errorf("(%d): %s", resp.Code, resp.Log)
	}
	out.Height = resp.Height

	if len(resp.Key) == 0 {
		return out, nil
	}

	var keys, vals app.ResultSet
	if err := keys.Unmarshal(resp.Key); err != nil {
		return out, err
	}
	if err := vals.Unmarshal(resp.Value); err != nil {
		return out, err
	}
	out.Models, err = app.JoinResults(&keys, &vals)
	return out, err
}

// BroadcastTxResponse is the result of submitting a transaction.
type BroadcastTxResponse struct {
	Error    error                           // not-nil if there was an error sending
	Response *ctypes.ResultBroadcastTxCommit // not-nil if we got response from node
}

// IsError returns the error for failure if it failed, or nil if it
// succeeded.
func (b BroadcastTxResponse) IsError() error {
	if b.Error != nil {
		return b.Error
	}
	if b.Response.CheckTx.IsErr() {
		ctx := b.Response.CheckTx
		return errors.Errorf("CheckTx error: (%d) %s", ctx.Code, ctx.Log)
	}
	if b.Response.DeliverTx.IsErr() {
		dtx := b.Response.DeliverTx
		return errors.Errorf("DeliverTx error: (%d) %s", dtx.Code, dtx.Log)
	}
	return nil
}

// BroadcastTx serializes a signed transaction and writes it to the
// blockchain. It returns when the transaction is committed.
func (c *PiggybankClient) BroadcastTx(tx weave.Tx) BroadcastTxResponse {
	data, err := tx.Marshal()
	if err != nil {
		return BroadcastTxResponse{Error: err}
	}
	res, err := c.conn.BroadcastTxCommit(data)
	return BroadcastTxResponse{Error: err, Response: res}
}

// UserResponse is a response on a query for a User.
type UserResponse struct {
	Address  weave.Address
	UserData sigs.UserData
	Height   int64
}

// GetUser will return nonce and public key registered for a given address
// if it was ever used. If it returns (nil, nil), then this address never
// signed a transaction before (and can use nonce = 0).
func (c *PiggybankClient) GetUser(addr weave.Address) (*UserResponse, error) {
	if err := addr.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid address")
	}
	resp, err := c.AbciQuery("/auth", addr)
	if err != nil {
		return nil, err
	}
	if len(resp.Models) == 0 {
		return nil, nil
	}
	out := UserResponse{
		Address: addr,
		Height:  resp.Height,
	}
	if err := out.UserData.Unmarshal(resp.Models[0].Value); err != nil {
		return nil, err
	}
	return &out, nil
}

// WalletResponse is a response on a query for a wallet.
type WalletResponse struct {
	Address weave.Address
	Wallet  cash.Set
	Height  int64
}

// GetWallet will return a wallet given an address. If no wallet is present,
// it will return (nil, nil).
func (c *PiggybankClient) GetWallet(addr weave.Address) (*WalletResponse, error) {
	if err := addr.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid address")
	}
	resp, err := c.AbciQuery("/wallets", addr)
	if err != nil {
		return nil, err
	}
	if len(resp.Models) == 0 {
		return nil, nil
	}
	out := WalletResponse{
		Address: addr,
		Height:  resp.Height,
	}
	if err := out.Wallet.Unmarshal(resp.Models[0].Value); err != nil {
		return nil, err
	}
	return &out, nil
}

// VaultResponse is a response on a query for a vault.
type VaultResponse struct {
	ID     []byte
	Vault  piggybank.Vault
	Height int64
}

// GetVault returns the vault with given ID. If no vault exists, it returns
// (nil, nil).
func (c *PiggybankClient) GetVault(id []byte) (*VaultResponse, error) {
	resp, err := c.AbciQuery("/vaults", id)
	if err != nil {
		return nil, err
	}
	if len(resp.Models) == 0 {
		return nil, nil
	}
	out := VaultResponse{
		ID:     resp.Models[0].Key,
		Height: resp.Height,
	}
	if err := out.Vault.Unmarshal(resp.Models[0].Value); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetVaultBalance returns the amount of the configured currency held by the
// vault with given ID.
func (c *PiggybankClient) GetVaultBalance(id []byte) (*coin.Coin, error) {
	resp, err := c.AbciQuery("/vaultbalances", id)
	if err != nil {
		return nil, err
	}
	if len(resp.Models) == 0 {
		return nil, errors.Errorf("no balance for vault %x", id)
	}
	var balance coin.Coin
	if err := balance.Unmarshal(resp.Models[0].Value); err != nil {
		return nil, err
	}
	return &balance, nil
}

// Nonce has a client/address pair, queries for the nonce and caches recent
// nonce locally to quickly sign.
type Nonce struct {
	mutex     sync.Mutex
	client    Client
	addr      weave.Address
	nonce     int64
	fromQuery bool
}

// NewNonce creates a nonce for a client / address pair. Call Query to force
// a query, Next to use cache if possible.
func NewNonce(client Client, addr weave.Address) *Nonce {
	return &Nonce{client: client, addr: addr}
}

// Query always queries the blockchain for the next nonce.
func (n *Nonce) Query() (int64, error) {
	user, err := n.client.GetUser(n.addr)
	if err != nil {
		return 0, err
	}
	n.mutex.Lock()
	defer n.mutex.Unlock()
	if user != nil {
		n.nonce = user.UserData.Sequence
	} else {
		n.nonce = 0 // new account starts at 0
	}
	n.fromQuery = true
	return n.nonce, nil
}

// Next will use a cached value if present, otherwise Query. It will always
// increment by 1, assuming last nonce was properly used.
func (n *Nonce) Next() (int64, error) {
	n.mutex.Lock()
	initialized := n.fromQuery || n.nonce != 0
	n.mutex.Unlock()
	if !initialized {
		return n.Query()
	}
	n.mutex.Lock()
	defer n.mutex.Unlock()
	n.nonce++
	n.fromQuery = false
	return n.nonce, nil
}
