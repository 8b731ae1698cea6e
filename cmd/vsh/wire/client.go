package wire

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"

	"vsh/cmd/vsh/value"
)

// IntrospectMethod is the conventional method every vsh peer answers with
// one reply Object per registered method — the `varlink` builtin's
// no-method-argument form (spec.md §4.6).
const IntrospectMethod = "org.varlink.service.GetInterfaceDescription"

// MethodInfo is one row of an introspection reply.
type MethodInfo struct {
	Interface string `json:"interface"`
	Method    string `json:"method"`
	Signature string `json:"signature"`
}

// Client is a connection to an external Varlink-style peer.
type Client struct {
	conn   net.Conn
	reader *bufio.Reader
}

// Dial connects to address ("unix:/path" or "tcp:host:port").
func Dial(address string) (*Client, error) {
	conn, err := dial(address)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, reader: bufio.NewReader(conn)}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Call sends a request frame and reads reply frames until one lacks
// Continues, returning the full Parameters sequence. An error reply frame
// from the peer is surfaced as an error, not decoded as data.
func (c *Client) Call(method string, params value.Object) ([]value.Object, error) {
	req := Request{Method: method, More: true, Parameters: params}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	if _, err := c.conn.Write(append(body, 0)); err != nil {
		return nil, fmt.Errorf("write request: %w", err)
	}

	var objects []value.Object
	for {
		line, err := c.reader.ReadBytes(0)
		if err != nil {
			return nil, fmt.Errorf("read reply: %w", err)
		}
		line = line[:len(line)-1] // trim the NUL terminator

		var reply Reply
		if err := json.Unmarshal(line, &reply); err != nil {
			return nil, fmt.Errorf("decode reply: %w", err)
		}
		if reply.IsError() {
			return nil, &CallError{Method: method, Name: reply.Error, Params: reply.Parameters}
		}
		objects = append(objects, reply.Parameters)
		if !reply.Continues {
			break
		}
	}
	return objects, nil
}

// Introspect calls IntrospectMethod and decodes each reply Object into a
// MethodInfo row.
func (c *Client) Introspect() ([]MethodInfo, error) {
	objects, err := c.Call(IntrospectMethod, value.NewObject())
	if err != nil {
		return nil, err
	}
	infos := make([]MethodInfo, 0, len(objects))
	for _, o := range objects {
		iface, _ := o.Get("interface")
		meth, _ := o.Get("method")
		sig, _ := o.Get("signature")
		infos = append(infos, MethodInfo{
			Interface: value.Stringify(iface),
			Method:    value.Stringify(meth),
			Signature: value.Stringify(sig),
		})
	}
	return infos, nil
}
