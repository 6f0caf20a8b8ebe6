package mlmodel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PranavThoppe/GameTracker/internal/config"
	"github.com/PranavThoppe/GameTracker/internal/interfaces"
	"github.com/PranavThoppe/GameTracker/internal/model"
	"github.com/PranavThoppe/GameTracker/internal/utils/httpclient"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
)

// Client 外部排序模型客户端。一次调用对应一个TBD分组，整批提交整批返回；
// 瞬时失败做有界指数退避重试，重试耗尽由调用方按分组级软失败处理
type Client struct {
	cfg        *config.UpstreamConfig
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient 创建排序模型客户端
func NewClient(cfg *config.UpstreamConfig, logger *logrus.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: httpclient.NewHTTPClient(cfg, logger),
		logger:     logger,
	}
}

var _ interfaces.Predictor = (*Client)(nil)

// PredictTop 提交整组特征并取回排序结果
func (c *Client) PredictTop(ctx context.Context, games []model.MLGame) (*model.MLPrediction, error) {
	if len(games) == 0 {
		return nil, fmt.Errorf("空分组不可提交模型")
	}

	body, err := json.Marshal(model.MLPredictRequest{Games: games})
	if err != nil {
		return nil, fmt.Errorf("序列化模型请求失败: %w", err)
	}

	var result *model.MLPrediction
	operation := func() error {
		pred, err := c.doPredict(ctx, body)
		if err != nil {
			return err
		}
		result = pred
		return nil
	}

	retries := uint64(c.cfg.RetryCount)
	if retries == 0 {
		retries = 2
	}
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), retries), ctx)
	if err := backoff.Retry(operation, bo); err != nil {
		return nil, fmt.Errorf("调用排序模型失败: %w", err)
	}
	return result, nil
}

// doPredict 单次HTTP调用；4xx视为永久失败不再重试
func (c *Client) doPredict(ctx context.Context, body []byte) (*model.MLPrediction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/predict_top", bytes.NewReader(body))
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Errorf("关闭模型响应体失败: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("模型API状态异常: %d, body: %s", resp.StatusCode, msg)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}

	var pred model.MLPrediction
	if err := json.NewDecoder(resp.Body).Decode(&pred); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("解析模型响应失败: %w", err))
	}

	c.logger.WithFields(logrus.Fields{
		"top_game_id": pred.TopGameID,
		"games":       len(pred.Probabilities),
		"cost":        time.Since(start).String(),
	}).Debug("模型调用成功")
	return &pred, nil
}
