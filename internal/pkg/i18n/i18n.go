package i18n

import (
	"os"
	"strings"

	"github.com/gioco-play/easy-i18n/i18n"
	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// InitAuto registers all translations and sets the language based on system locale or LANG env.
func InitAuto() {
	Register()

	lang := language.English
	userLocales, _ := locale.GetLocales()
	if len(userLocales) > 0 && strings.HasSuffix(strings.ToUpper(userLocales[0]), "CN") {
		lang = language.SimplifiedChinese
	} else if strings.Contains(os.Getenv("LANG"), "zh_CN") || strings.Contains(os.Getenv("LC_ALL"), "zh_CN") {
		lang = language.SimplifiedChinese
	}
	i18n.SetLang(lang)
}

// Init registers all translations and forces the given language.
func Init(lang language.Tag) {
	Register()
	i18n.SetLang(lang)
}

// SetLangFlag applies the --lang flag value; unknown values keep the auto-detected language.
func SetLangFlag(langFlag string) {
	switch langFlag {
	case "cn", "zh":
		i18n.SetLang(language.SimplifiedChinese)
	case "en":
		i18n.SetLang(language.English)
	default:
		// use auto setting
	}
}

// Register registers English and Chinese strings for every message key used by the tool.
func Register() {
	for key, zh := range catalog {
		message.SetString(language.English, key, key)
		message.SetString(language.SimplifiedChinese, key, zh)
	}
	message.SetString(language.English, "AI_DIAG_PROMPT_OSS", "You are an Alibaba Cloud OSS expert. Based on the provided upload log, give concise and clear repair suggestions in English. The output should be suitable for display in the command line, avoid using Markdown format, and use a clear text structure.\n\nSample output format:\nERROR: [Error keyword]\nCAUSE: [Brief analysis of the cause]\nFIX: [Specific repair steps]")
	message.SetString(language.SimplifiedChinese, "AI_DIAG_PROMPT_OSS", "你是阿里云OSS专家。请根据提供的上传日志，给出简洁、明确的中文修复建议。输出内容应适合在命令行中展示，避免使用Markdown格式，使用清晰的文本结构。\n\n示例输出格式：\n错误: [错误关键词]\n原因: [简要分析原因]\n修复: [具体修复步骤]")
}

// catalog maps English message keys to their Simplified Chinese translation
var catalog = map[string]string{
	// upload flow
	"Start uploading to OSS...": "开始上传到OSS...",
	"Upload success!": "上传成功！",
	"Upload failed!": "上传失败！",
	"Fetching temporary credential from %s": "正在从 %s 获取临时凭证",
	"Failed to fetch temporary credential: %v": "获取临时凭证失败: %v",
	"Local file not found: %s": "本地文件不存在: %s",
	"Failed to create OSS client: %v": "创建OSS客户端失败: %v",
	"File size %s is less than %s, will use simple upload": "文件大小 %s 小于 %s，将使用简单上传",
	"File size %s reaches %s, will use multipart upload (%d tasks, %s per part)": "文件大小 %s 达到 %s，将使用分片上传（%d 个任务，每片 %s）",
	"Object %s uploaded to bucket %s": "对象 %s 已上传到存储空间 %s",
	"Caught a service error, which means your request made it to OSS, but was rejected with an error response for some reason.": "捕获到服务端错误，请求已到达OSS，但由于某种原因被拒绝。",
	"Error Message: %s": "错误信息: %s",
	"Error Code: %s": "错误码: %s",
	"Request ID: %s": "请求ID: %s",
	"Host ID: %s": "主机ID: %s",
	"Caught a client error, which means the client encountered a serious internal problem while trying to communicate with OSS, such as not being able to access the network.": "捕获到客户端错误，客户端在与OSS通信时遇到严重的内部问题，例如无法访问网络。",
	"Caught an unexpected error: %v": "捕获到未知错误: %v",
	"Upload request is invalid: %v": "上传请求无效: %v",

	// progress
	"[oss-upload-helper] Upload completed!\n": "[oss-upload-helper] 上传完成！\n",
	"  Total uploaded: %s\n": "  已上传总量: %s\n",
	"  Duration: %s\n": "  耗时: %s\n",
	"  Average speed: %s/s\n": "  平均速度: %s/s\n",

	// config validation
	"Endpoint is required": "Endpoint 不能为空",
	"STS URL and AccessKey pair cannot be empty at the same time": "STS地址与AccessKey不能同时为空",
	"AccessKey pair will be ignored when STS URL is set": "设置STS地址后AccessKey将被忽略",
	"AccessKeyId and AccessKeySecret must be set together": "AccessKeyId 与 AccessKeySecret 必须同时设置",
	"Bucket name is required": "存储空间名称不能为空",
	"Local path is required": "本地路径不能为空",
	"Remote path is required": "远端路径不能为空",
	"Part size must be a positive number of MiB": "分片大小必须为正整数（MiB）",
	"Task number must be positive": "并发任务数必须为正整数",
	"Task number %d is bigger than twice the CPU count (%d)": "并发任务数 %d 超过CPU核数 (%d) 的两倍",

	// cli
	"Load config error: %v\n": "加载配置错误: %v\n",
	"Please input access key secret: ": "请输入AccessKeySecret: ",
	"Checking upload configuration...\n": "检查上传配置...\n",
	"Configuration check passed\n": "配置检查通过\n",
	"Configuration check failed: %v\n": "配置检查失败: %v\n",
	"Endpoint": "访问域名",
	"Credential": "凭证",
	"Bucket": "存储空间",
	"Local path": "本地路径",
	"Remote path": "远端路径",
	"Part size": "分片大小",
	"Task number": "并发任务数",
	"Strategy": "上传方式",
	"simple": "简单上传",
	"multipart": "分片上传",
	"STS": "STS临时凭证",
	"AccessKey": "AccessKey",
	"Would you like to use AI diagnosis? (y/n): ": "是否使用AI诊断？(y/n): ",
	"Qwen API Key is required for AI diagnosis. Please set it in config.\n": "AI诊断需要 Qwen API Key，请在配置文件中设置。\n",
	"AI diagnosis failed: %v\n": "AI诊断失败: %v\n",
	"AI diagnosis suggestion:\n": "AI诊断建议:\n",
	"You can check the log file for details: %s\n": "你可以查看本地日志文件获取详细信息: %s\n",
}
