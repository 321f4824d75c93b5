package provider

import (
	"github.com/google/wire"
	"github.com/xh-polaris/sahayak-core-api/biz/application/service"
	"github.com/xh-polaris/sahayak-core-api/biz/domain/remote"
	"github.com/xh-polaris/sahayak-core-api/biz/domain/ttstail"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/config"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/mapper/conversation"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/mapper/form"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/mapper/model"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
	// 语音合成尾段的工作者随进程常驻
	provider.Tail.Start()
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config              *config.Config
	Tail                *ttstail.Tail
	AskService          service.IAskService
	VoteService         service.IVoteService
	MessageService      service.IMessageService
	ConversationService service.IConversationService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.AskServiceSet,
	service.VoteServiceSet,
	service.MessageServiceSet,
	service.ConversationServiceSet,
)

var DomainSet = wire.NewSet(
	remote.NewHTTPGateway,
	wire.Bind(new(remote.Gateway), new(*remote.HTTPGateway)),
	ttstail.NewTail,
	wire.Bind(new(ttstail.Submitter), new(*ttstail.Tail)),
)

var InfraSet = wire.NewSet(
	config.NewConfig,
	conversation.NewConversationMongoMapper,
	model.NewModelMongoMapper,
	form.NewFormMongoMapper,
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	DomainSet,
	InfraSet,
)
