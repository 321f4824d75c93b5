package ttstail

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/xh-polaris/sahayak-core-api/biz/domain/remote"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/config"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/cst"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/mapper/conversation"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/mapper/model"
	"github.com/xh-polaris/sahayak-core-api/pkg/errorx"
	"github.com/xh-polaris/sahayak-core-api/pkg/logs"
	"github.com/xh-polaris/sahayak-core-api/pkg/safego"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ttstail 是ask管线的异步尾段: 响应返回后在工作池中合成语音并回写消息
// 失败只落库为failed并打日志, 不回传调用方; 终态不重试

// Task 一次语音合成任务, 同步路径落库后提交
type Task struct {
	ConversationId primitive.ObjectID
	MessageId      primitive.ObjectID
	Language       string
	// Response与Summary是最终文本(已格式化, 已翻译回请求语言)
	Response string
	Summary  string
}

// Submitter 供同步路径提交尾段任务
type Submitter interface {
	Submit(task *Task)
}

var _ Submitter = (*Tail)(nil)

type Tail struct {
	ModelMapper        model.MongoMapper
	ConversationMapper conversation.MongoMapper
	Gateway            remote.Gateway

	workers int
	queue   chan *Task
}

func NewTail(config *config.Config, mm model.MongoMapper, cm conversation.MongoMapper, gw remote.Gateway) *Tail {
	return &Tail{
		ModelMapper:        mm,
		ConversationMapper: cm,
		Gateway:            gw,
		workers:            config.TTSTail.Workers,
		queue:              make(chan *Task, config.TTSTail.QueueSize),
	}
}

// Start 启动工作池
func (t *Tail) Start() {
	for i := 0; i < t.workers; i++ {
		safego.Go(context.Background(), t.loop)
	}
}

// Submit 提交任务, 不阻塞同步路径
// 队列饱和时丢弃任务并把消息置为failed, 调用方轮询到failed即知合成不会发生
func (t *Tail) Submit(task *Task) {
	select {
	case t.queue <- task:
	default:
		ctx := context.Background()
		logs.CtxWarnf(ctx, "[ttstail] queue saturated, drop message %s", task.MessageId.Hex())
		if err := t.ConversationMapper.FailMessageTTS(ctx, task.ConversationId, task.MessageId); err != nil {
			logs.CtxErrorf(ctx, "[ttstail] fail message %s err:%s", task.MessageId.Hex(), errorx.ErrorWithoutStack(err))
		}
	}
}

func (t *Tail) loop() {
	for task := range t.queue {
		t.process(context.Background(), task)
	}
}

// process 先合成摘要音频; 完整回答与摘要文本一致时复用同一段音频,
// 不一致才再调一次合成. 任一失败则两个状态一并置failed
func (t *Tail) process(ctx context.Context, task *Task) {
	m, err := t.ModelMapper.FindActive(ctx, cst.ModelTypeTTS, task.Language, "")
	if errors.Is(err, model.ErrNotFound) {
		// 未配置TTS模型按尽力而为处理: 消息停留在processing, 只告警
		logs.CtxWarnf(ctx, "[ttstail] no tts model for language %s, message %s left processing",
			task.Language, task.MessageId.Hex())
		return
	}
	if err != nil {
		t.fail(ctx, task, err)
		return
	}

	summaryUrl, err := t.Gateway.TTS(ctx, m, CleanText(task.Summary), cst.DefaultTTSGender)
	if err != nil {
		t.fail(ctx, task, err)
		return
	}
	url := summaryUrl
	if task.Response != task.Summary {
		if url, err = t.Gateway.TTS(ctx, m, CleanText(task.Response), cst.DefaultTTSGender); err != nil {
			t.fail(ctx, task, err)
			return
		}
	}

	if err = t.ConversationMapper.CompleteMessageTTS(ctx, task.ConversationId, task.MessageId, url, summaryUrl); err != nil {
		logs.CtxErrorf(ctx, "[ttstail] complete message %s err:%s", task.MessageId.Hex(), errorx.ErrorWithoutStack(err))
	}
}

func (t *Tail) fail(ctx context.Context, task *Task, cause error) {
	logs.CtxErrorf(ctx, "[ttstail] synthesize message %s err:%s", task.MessageId.Hex(), errorx.ErrorWithoutStack(cause))
	if err := t.ConversationMapper.FailMessageTTS(ctx, task.ConversationId, task.MessageId); err != nil {
		logs.CtxErrorf(ctx, "[ttstail] fail message %s err:%s", task.MessageId.Hex(), errorx.ErrorWithoutStack(err))
	}
}

var decorRe = regexp.MustCompile(`[•*#]+\s*`)

// CleanText 去掉项目符号等装饰符号, 合成前的文本清理
func CleanText(text string) string {
	return strings.TrimSpace(decorRe.ReplaceAllString(text, ""))
}
