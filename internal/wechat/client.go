package wechat

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Session is the tuple the mini-program login endpoint returns for an
// opaque login code.
type Session struct {
	OpenID     string
	UnionID    string
	SessionKey string
}

type Client struct {
	AppID  string
	Secret string
	HTTP   *http.Client
}

type jscode2sessionResp struct {
	OpenID     string `json:"openid"`
	UnionID    string `json:"unionid"`
	SessionKey string `json:"session_key"`
	ErrCode    int    `json:"errcode"`
	ErrMsg     string `json:"errmsg"`
}

func (c *Client) Jscode2Session(code string) (*Session, error) {
	hc := c.HTTP
	if hc == nil {
		hc = &http.Client{Timeout: 8 * time.Second}
	}
	u := fmt.Sprintf("https://api.weixin.qq.com/sns/jscode2session?appid=%s&secret=%s&js_code=%s&grant_type=authorization_code", c.AppID, c.Secret, code)
	resp, err := hc.Get(u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	var out jscode2sessionResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if out.ErrCode != 0 {
		return nil, fmt.Errorf("wechat error: %d %s", out.ErrCode, out.ErrMsg)
	}
	return &Session{OpenID: out.OpenID, UnionID: out.UnionID, SessionKey: out.SessionKey}, nil
}
